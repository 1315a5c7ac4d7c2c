package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/w2v-bench/internal/config"
	"github.com/daryltucker/w2v-bench/internal/model"
	"github.com/daryltucker/w2v-bench/internal/output"
	"github.com/daryltucker/w2v-bench/internal/plot"
	"github.com/daryltucker/w2v-bench/internal/table"
)

type plotFlags struct {
	word2vecTable string
	yzw2vTable    string
	output        string
	title         string
	width         float64
	height        float64
}

func newPlotCmd() *cobra.Command {
	f := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot thread count vs. training time for word2vec and yzw2v",
		Long: `Loads two result tables written by 'sweep', keeps the best trial of
every thread count and draws both curves into one image. The image format
follows the --output extension (png, svg, pdf, ...).`,
		Example: `  w2v-bench plot --word2vec word2vec.tsv --yzw2v yzw2v.tsv -o threads.png -t "text8, 5 iterations"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flag("config").Value.String())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Plot.Width = f.width
			}
			if cmd.Flags().Changed("height") {
				cfg.Plot.Height = f.height
			}

			inputs := []struct {
				variant model.Variant
				path    string
			}{
				{model.Word2Vec, f.word2vecTable},
				{model.YzW2V, f.yzw2vTable},
			}

			var series []plot.Named
			for _, in := range inputs {
				s, err := table.Load(in.path)
				if err != nil {
					return err
				}
				output.Logger.Info("Loaded table", "trainer", in.variant, "path", in.path, "rows", s.Len())
				series = append(series, plot.Named{Name: string(in.variant), Series: s})
			}

			opts := plot.Options{Width: cfg.Plot.Width, Height: cfg.Plot.Height}
			if err := plot.Render(f.output, f.title, opts, series...); err != nil {
				return err
			}
			output.Logger.Info("Plot saved", "path", f.output)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&f.word2vecTable, "word2vec", "", "result table for word2vec")
	fs.StringVar(&f.yzw2vTable, "yzw2v", "", "result table for yzw2v")
	fs.StringVarP(&f.output, "output", "o", "", "image file to write")
	fs.StringVarP(&f.title, "title", "t", "", "plot title")
	fs.Float64Var(&f.width, "width", 6, "image width in inches")
	fs.Float64Var(&f.height, "height", 4, "image height in inches")

	cmd.MarkFlagRequired("word2vec")
	cmd.MarkFlagRequired("yzw2v")
	cmd.MarkFlagRequired("output")

	return cmd
}
