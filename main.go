package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"distortion-os/app"
	"distortion-os/config"
	"distortion-os/gallery"
	"distortion-os/i18n"
	"distortion-os/inspect"
	"distortion-os/log"

	"github.com/spf13/cobra"
)

var (
	version     = "1.0.0"
	langFlag    string
	mobileFlag  bool
	noSoundFlag bool
	sortFlag    string
	searchFlag  string
	jsonFlag    bool
	rootCmd     = &cobra.Command{
		Use:   "distortion-os",
		Short: "Distortion OS - a themed desktop for browsing the Project Distortion tarot cards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			return app.Run(ctx, app.Options{
				Language:    langFlag,
				ForceMobile: mobileFlag,
				NoSound:     noSoundFlag,
			})
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the saved tutorial progress and language",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.ResetState(); err != nil {
				return fmt.Errorf("failed to reset state: %w", err)
			}
			fmt.Println("State has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)

			return nil
		},
	}

	cardsCmd = &cobra.Command{
		Use:   "cards",
		Short: "Print the card archive",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := gallery.Load()
			if err != nil {
				return err
			}
			tr, err := i18n.Load()
			if err != nil {
				return err
			}
			lang := langFlag
			if lang == "" {
				lang = config.LoadConfig().Language
			}
			lang = tr.SetLanguage(lang)

			entries := catalog.Grid(gallery.ParseSort(sortFlag), lang)
			if searchFlag != "" {
				entries = catalog.Search(searchFlag, lang)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", tr.T("th_no"), tr.T("th_card"), tr.T("th_char"), tr.T("th_emp"))
			for _, e := range entries {
				no, char, artist := "-", "-", "-"
				if e.Variant != nil {
					no = fmt.Sprint(e.Variant.No)
					char = e.Variant.Char.In(lang)
					artist = e.Variant.Artist
				}
				fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n", no, e.Card.Numeral, e.Card.Title.In(lang), char, artist)
			}
			return w.Flush()
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect",
		Short: "Print the last desktop snapshot written with DOS_INSPECT=1",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := inspect.ReadSnapshot(inspect.Path())
			if err != nil {
				return err
			}
			if jsonFlag {
				data, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Print(s.ToText())
			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of distortion-os",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("distortion-os version %s\n", version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "",
		"Display language ('en', 'ko' or 'ja'). Defaults to the config, then $LANG.")
	rootCmd.Flags().BoolVar(&mobileFlag, "mobile", false,
		"Start in the mobile layout whatever the terminal size")
	rootCmd.Flags().BoolVar(&noSoundFlag, "no-sound", false, "Mute every sound effect")

	cardsCmd.Flags().StringVarP(&sortFlag, "sort", "s", "id", "Sort order: 'all', 'id' or 'name'")
	cardsCmd.Flags().StringVar(&searchFlag, "search", "", "Fuzzy search card titles, characters and artists")

	inspectCmd.Flags().BoolVar(&jsonFlag, "json", false, "Print the raw JSON snapshot")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(cardsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
