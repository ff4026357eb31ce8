package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/k0kubun/pp"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/kotaroooo0/ngramdex"
)

type buildConfig struct {
	Arity      int     `yaml:"arity"`
	PadLeft    int     `yaml:"pad_left"`
	PadRight   int     `yaml:"pad_right"`
	CaseFold   bool    `yaml:"case_fold"`
	TF         string  `yaml:"tf"`
	IDF        string  `yaml:"idf"`
	Workers    int     `yaml:"workers"`
	KeysFile   string  `yaml:"keys_file"`
	Stemming   bool    `yaml:"stemming"`
	DB         *dbYaml `yaml:"db"`
	CorpusName string  `yaml:"corpus_name"`
}

type dbYaml struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Addr     string `yaml:"addr"`
	Port     string `yaml:"port"`
	Database string `yaml:"database"`
}

func loadConfig(path string) (*buildConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &buildConfig{
		Arity:    2,
		PadLeft:  -1,
		PadRight: -1,
		CaseFold: true,
		TF:       "raw",
		IDF:      "smoothed",
		Workers:  runtime.NumCPU(),
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *buildConfig) scheme() (ngramdex.WeightingScheme, error) {
	var s ngramdex.WeightingScheme
	switch cfg.TF {
	case "raw", "":
		s.TF = ngramdex.TFRaw
	case "log":
		s.TF = ngramdex.TFLog
	case "augmented":
		s.TF = ngramdex.TFAugmented
	default:
		return s, fmt.Errorf("unknown tf scheme: %q", cfg.TF)
	}
	switch cfg.IDF {
	case "smoothed", "":
		s.IDF = ngramdex.IDFSmoothed
	case "plain":
		s.IDF = ngramdex.IDFPlain
	default:
		return s, fmt.Errorf("unknown idf scheme: %q", cfg.IDF)
	}
	return s, nil
}

func (cfg *buildConfig) shingler() (*ngramdex.Shingler, error) {
	opts := []ngramdex.ShinglerOption{}
	if cfg.PadLeft >= 0 || cfg.PadRight >= 0 {
		left, right := cfg.PadLeft, cfg.PadRight
		if left < 0 {
			left = cfg.Arity - 1
		}
		if right < 0 {
			right = cfg.Arity - 1
		}
		opts = append(opts, ngramdex.WithPadding(left, right))
	}
	if cfg.CaseFold {
		opts = append(opts, ngramdex.WithCaseFold())
	}
	if cfg.Stemming {
		opts = append(opts, ngramdex.WithCharFilters(ngramdex.NewStemmerCharFilter()))
	}
	return ngramdex.NewShingler(cfg.Arity, opts...)
}

func (cfg *buildConfig) keySource() (ngramdex.KeySource, error) {
	if cfg.DB != nil {
		db, err := ngramdex.NewDBClient(ngramdex.NewDBConfig(
			cfg.DB.User, cfg.DB.Password, cfg.DB.Addr, cfg.DB.Port, cfg.DB.Database,
		))
		if err != nil {
			return nil, err
		}
		return ngramdex.NewStorageRdbImpl(db), nil
	}
	if cfg.KeysFile == "" {
		return nil, errors.New("config needs either a db section or a keys_file")
	}
	f, err := os.Open(cfg.KeysFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ngramdex.NewSliceKeySource(keys), nil
}

func buildCorpus(cfg *buildConfig) (*ngramdex.Corpus, error) {
	shingler, err := cfg.shingler()
	if err != nil {
		return nil, err
	}
	scheme, err := cfg.scheme()
	if err != nil {
		return nil, err
	}
	builder := ngramdex.NewCorpusBuilder(shingler,
		ngramdex.WithWeighting(scheme.TF, scheme.IDF),
		ngramdex.WithParallelism(cfg.Workers),
	)
	source, err := cfg.keySource()
	if err != nil {
		return nil, err
	}
	if err := builder.AddSource(source); err != nil {
		return nil, err
	}
	return builder.Finalize()
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	corpus, err := buildCorpus(cfg)
	if err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		// Without an output file the corpus is shelved in the configured
		// database instead.
		if cfg.DB == nil || cfg.CorpusName == "" {
			return errors.New("usage: ngramdex index -o <file>, or set db and corpus_name in the config")
		}
		db, err := ngramdex.NewDBClient(ngramdex.NewDBConfig(
			cfg.DB.User, cfg.DB.Password, cfg.DB.Addr, cfg.DB.Port, cfg.DB.Database,
		))
		if err != nil {
			return err
		}
		storage := ngramdex.NewStorageRdbImpl(db)
		if err := storage.SaveCorpus(cfg.CorpusName, corpus); err != nil {
			return err
		}
		fmt.Printf("indexed %d keys over %d grams -> corpus %q\n", corpus.NumDocuments(), corpus.NumGrams(), cfg.CorpusName)
		return nil
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := corpus.Save(f); err != nil {
		return err
	}
	fmt.Printf("indexed %d keys over %d grams -> %s\n", corpus.NumDocuments(), corpus.NumGrams(), out)
	return nil
}

func openCorpus(c *cli.Context) (*ngramdex.Corpus, error) {
	path := c.String("index")
	if path == "" {
		return nil, errors.New("an index file is required (-i)")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ngramdex.Load(f)
}

func searchCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: ngramdex search <query>")
	}
	corpus, err := openCorpus(c)
	if err != nil {
		return err
	}
	results := corpus.Search(c.Args().First(), c.Int("top-k"), c.Float64("min-similarity"))
	pp.Println(results)
	return nil
}

func prefixCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: ngramdex prefix <prefix>")
	}
	corpus, err := openCorpus(c)
	if err != nil {
		return err
	}
	pp.Println(corpus.PrefixSearch(c.Args().First()))
	return nil
}

func main() {
	app := &cli.App{
		Name:  "ngramdex",
		Usage: "Build and query n-gram fuzzy-matching indexes",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   "ngramdex.yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "index",
				Usage:  "Build an index from the configured key source",
				Action: indexCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output index file",
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Fuzzy-search an index",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "index",
						Aliases: []string{"i"},
						Usage:   "Index file",
					},
					&cli.IntFlag{
						Name:  "top-k",
						Value: 10,
						Usage: "Maximum number of results",
					},
					&cli.Float64Flag{
						Name:  "min-similarity",
						Value: 0.0,
						Usage: "Drop results scoring below this",
					},
				},
			},
			{
				Name:   "prefix",
				Usage:  "List keys with a given prefix",
				Action: prefixCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "index",
						Aliases: []string{"i"},
						Usage:   "Index file",
					},
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
