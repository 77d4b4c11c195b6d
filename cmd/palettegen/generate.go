package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	colorsFile string
	outFile    string
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates the palette table source from the colors file",
	Long: `Generates the palette package's table source.

Each line of the colors file is a display name and a value separated by a
tab. The value is #RRGGBB, #RRGGBBAA, or a 0x-prefixed packed bit pattern
pinned from an earlier table revision. Without --colors the colors file
embedded in this binary is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		setGenerateDefaults(cmd)

		var in io.Reader = strings.NewReader(defaultColors)
		if colorsFile != "" {
			f, err := os.Open(colorsFile)
			if err != nil {
				log.Fatal(err)
			}
			defer f.Close()
			in = f
		}

		entries, err := parseColors(in)
		if err != nil {
			log.Fatal(err)
		}

		src, err := renderTable(entries)
		if err != nil {
			log.Fatal(err)
		}

		if err := os.WriteFile(outFile, []byte(src), 0644); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %d colors to %s (checksum 0x%016x)\n",
			len(entries), outFile, tableChecksum(entries))
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&colorsFile, "colors", "c", "", "colors file (default is the embedded one)")
	generateCmd.Flags().StringVarP(&outFile, "out", "o", "palette/table.go", "output source file")
}

func setGenerateDefaults(cmd *cobra.Command) {
	if colorsFile == "" {
		colorsFile = viper.GetString("colors")
	}
	if !cmd.Flags().Changed("out") && viper.IsSet("out") {
		outFile = viper.GetString("out")
	}
}
