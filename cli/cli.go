package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/tebeka/snowball"

	"github.com/deanrtaylor1/gowordcloud/config"
	"github.com/deanrtaylor1/gowordcloud/logger"
	"github.com/deanrtaylor1/gowordcloud/pipeline"
	"github.com/deanrtaylor1/gowordcloud/render"
	"github.com/deanrtaylor1/gowordcloud/tokenizer"
	"github.com/deanrtaylor1/gowordcloud/util"

	"os"
)

type options struct {
	top           int
	width         int
	height        int
	bgColor       string
	fontPath      string
	output        string
	logPath       string
	jsonPath      string
	stopwordsEN   string
	stopwordsJA   string
	normalizePath string
	stem          bool
	logJSON       bool
	verbose       bool
}

var opts options

var rootCmd = &cobra.Command{
	Use:   "gowordcloud [target]",
	Short: "Generate a bilingual word cloud from markdown posts",
	Long: `gowordcloud scans a directory of Japanese/English markdown posts,
extracts a ranked vocabulary and renders it as a frequency-weighted
word cloud image.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&opts.top, "top", 80, "number of tokens to include in the word cloud")
	flags.IntVar(&opts.width, "width", 900, "width of the generated image")
	flags.IntVar(&opts.height, "height", 600, "height of the generated image")
	flags.StringVar(&opts.bgColor, "bg-color", "white", "background color for the word cloud image")
	flags.StringVar(&opts.fontPath, "font-path", "", "path to a font file that supports Japanese")
	flags.StringVar(&opts.output, "output", "word_cloud.png", "image file to write (PNG)")
	flags.StringVar(&opts.logPath, "log", "word_cloud.log", "path to write the token frequency list")
	flags.StringVar(&opts.jsonPath, "json", "", "optional path to write the token frequency list as JSON")
	flags.StringVar(&opts.stopwordsEN, "stopwords-en", "stopwords_en.txt", "path to English stopwords file (one word per line)")
	flags.StringVar(&opts.stopwordsJA, "stopwords-ja", "stopwords_ja.txt", "path to Japanese stopwords file (one word per line)")
	flags.StringVar(&opts.normalizePath, "normalize-case", "normalize.json", "path to case normalization config file (JSON with 'en' and 'ja' keys)")
	flags.BoolVar(&opts.stem, "stem", false, "stem English tokens before counting")
	flags.BoolVar(&opts.logJSON, "log-json", false, "emit JSON log lines instead of console output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	log, err := logger.New(opts.logJSON, opts.verbose)
	if err != nil {
		return err
	}
	defer log.Sync()

	target := ""
	if len(args) > 0 {
		target = args[0]
	} else {
		target, err = selectTargetDirectory()
		if err != nil {
			return err
		}
	}

	stopwordsEN, err := config.LoadStopwords(opts.stopwordsEN)
	if err != nil {
		return err
	}
	stopwordsJA, err := config.LoadStopwords(opts.stopwordsJA)
	if err != nil {
		return err
	}
	normalize, err := config.LoadNormalizeConfig(opts.normalizePath)
	if err != nil {
		return err
	}
	log.Debugw("loaded configuration",
		"stopwords_en", len(stopwordsEN),
		"stopwords_ja", len(stopwordsJA),
		"normalize_en", len(normalize.EN),
		"normalize_ja", len(normalize.JA),
	)

	segmenter, err := tokenizer.NewKagomeSegmenter()
	if err != nil {
		return fmt.Errorf("error initializing morphological analyzer: %w", err)
	}

	var stemmer tokenizer.Stemmer
	if opts.stem {
		s, err := snowball.New("english")
		if err != nil {
			return fmt.Errorf("error initializing stemmer: %w", err)
		}
		defer s.Close()
		stemmer = s
	}

	entries, err := pipeline.New(segmenter, stopwordsJA, stopwordsEN, normalize, stemmer, log).Run(target, opts.top)
	if err != nil {
		return err
	}

	if err := render.WriteLog(entries, opts.logPath); err != nil {
		return err
	}
	log.Infow("top tokens written", "path", opts.logPath, "tokens", len(entries))

	if opts.jsonPath != "" {
		if err := util.WriteJSON(opts.jsonPath, entries); err != nil {
			return err
		}
		log.Infow("json frequency list written", "path", opts.jsonPath)
	}

	if opts.fontPath == "" {
		log.Warnw("no font path provided, skipping image render", "hint", "pass --font-path with a font that covers Japanese glyphs")
	} else {
		renderOpts := render.Options{
			Width:    opts.width,
			Height:   opts.height,
			BgColor:  opts.bgColor,
			FontPath: opts.fontPath,
		}
		if err := render.Image(entries, renderOpts, opts.output); err != nil {
			return err
		}
		log.Infow("word cloud image saved", "path", opts.output)
	}

	fmt.Printf(util.TerminalGreen+"Extracted %d ranked tokens from %s\n"+util.TerminalReset, len(entries), target)
	return nil
}

// selectTargetDirectory prompts for a target when no positional argument is
// given, offering the subdirectories of the working directory.
func selectTargetDirectory() (string, error) {
	files, err := os.ReadDir(".")
	if err != nil {
		return "", err
	}

	directories := []string{}
	for _, f := range files {
		if f.IsDir() {
			if strings.HasPrefix(f.Name(), ".") {
				continue
			}
			directories = append(directories, "○ "+f.Name())
		}
	}
	if len(directories) == 0 {
		return "", fmt.Errorf("no target directory given and no subdirectories to choose from")
	}

	prompt := &survey.Select{
		Message: "Select a directory to scan:",
		Options: directories,
	}

	var selected string
	if err := survey.AskOne(prompt, &selected); err != nil {
		return "", err
	}

	return strings.Replace(selected, "○ ", "", -1), nil
}
