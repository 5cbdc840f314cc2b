package performance

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/goaccord/pkg/errors"
)

// LossPoints は分割番号を X、損失を Y とする点列を返す
func LossPoints(losses []float64) plotter.XYs {
	pts := make(plotter.XYs, len(losses))
	for i, v := range losses {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

// SavePlot は分割ごとの訓練・検証損失の折れ線グラフを path に保存する。
// 形式は拡張子 (.png, .svg, .pdf など) から決まる。
func SavePlot(training, validation []float64, title, path string) error {
	if len(training) == 0 && len(validation) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "SavePlot")
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "fold"
	p.Y.Label.Text = "loss"

	var lines []interface{}
	if len(training) > 0 {
		lines = append(lines, "training", LossPoints(training))
	}
	if len(validation) > 0 {
		lines = append(lines, "validation", LossPoints(validation))
	}
	if err := plotutil.AddLinePoints(p, lines...); err != nil {
		return errors.Wrap(err, "SavePlot: adding lines")
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "SavePlot: saving %s", path)
	}
	return nil
}

// SavePlot は交差検証結果の損失グラフを path に保存する
func (r *CrossValidationResult[TModel, TInput, TOutput]) SavePlot(title, path string) error {
	return SavePlot(r.TrainingLosses(), r.ValidationLosses(), title, path)
}
