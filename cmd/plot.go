package cmd

import (
	"os"

	"ordering-server/geo"
	"ordering-server/ranking"
	"ordering-server/util"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	plotFlags catalogFlags
	plotOut   string
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the catalog as an HTML map",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := plotFlags.load(cmd.Context())
		if err != nil {
			return err
		}
		user := plotFlags.user(cmd)
		geo.AnnotateDistances(catalog, user)

		f, err := os.Create(plotOut)
		if err != nil {
			return eris.Wrapf(err, "create %s", plotOut)
		}
		defer f.Close()

		if err := util.PlotVenues(f, ranking.Rank(catalog, "", ranking.Convenience), user); err != nil {
			return err
		}
		zap.L().Info("Venue map generated", zap.String("path", plotOut))
		return nil
	},
}

func init() {
	plotFlags.register(plotCmd)
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "venues_map.html", "output HTML file")
}
