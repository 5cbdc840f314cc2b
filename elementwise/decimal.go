package elementwise

import (
	"github.com/shopspring/decimal"
)

// DecimalPrecision is the number of significant digits kept after every
// decimal multiply and add.
const DecimalPrecision = 28

// roundDecimal rounds d half-to-even to DecimalPrecision significant digits.
func roundDecimal(d decimal.Decimal) decimal.Decimal {
	for d.NumDigits() > DecimalPrecision {
		places := -d.Exponent() - int32(d.NumDigits()-DecimalPrecision)
		d = d.RoundBank(places)
	}
	return d
}

// multiplyAndAddDecimal rounds after the multiply and after the add.
func multiplyAndAddDecimal(a, b, c decimal.Decimal) decimal.Decimal {
	return roundDecimal(roundDecimal(a.Mul(b)).Add(c))
}

// MultiplyAndAddDecimal computes result[i][j] = a[i][j]*b + c[i][j] in
// fixed-point decimal arithmetic, rounding the product and the sum to
// DecimalPrecision significant digits. Shapes follow the rules of
// MultiplyAndAdd.
func MultiplyAndAddDecimal(a [][]decimal.Decimal, b decimal.Decimal, c, result [][]decimal.Decimal) ([][]decimal.Decimal, error) {
	if err := checkJagged(opMultiplyAndAdd, a, c, result); err != nil {
		return nil, err
	}
	for i := range result {
		ai, ci, ri := a[i], c[i], result[i]
		for j := range ri {
			ri[j] = multiplyAndAddDecimal(ai[j], b, ci[j])
		}
	}
	return result, nil
}

// MultiplyAndAddDecimalNew is MultiplyAndAddDecimal into a new jagged matrix.
func MultiplyAndAddDecimalNew(a [][]decimal.Decimal, b decimal.Decimal, c [][]decimal.Decimal) ([][]decimal.Decimal, error) {
	return MultiplyAndAddDecimal(a, b, c, newJaggedLike[decimal.Decimal](a))
}

// MultiplyAndAddDecimalMatrix is the rectangular form of MultiplyAndAddDecimal.
func MultiplyAndAddDecimalMatrix(a *Matrix[decimal.Decimal], b decimal.Decimal, c, result *Matrix[decimal.Decimal]) (*Matrix[decimal.Decimal], error) {
	if err := checkDims(opMultiplyAndAdd, a.shape(), c.shape(), result.shape()); err != nil {
		return nil, err
	}
	ad, cd, rd := a.Raw(), c.Raw(), result.Raw()
	for k := range rd {
		rd[k] = multiplyAndAddDecimal(ad[k], b, cd[k])
	}
	return result, nil
}
