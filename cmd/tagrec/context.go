package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/viant/tagrec/catalog"
	"github.com/viant/tagrec/config"
	"github.com/viant/tagrec/engine"
	"github.com/viant/tagrec/recommend"
	"github.com/viant/tagrec/vector"
)

type commandContext struct {
	configFlag   string
	catalogFlag  string
	logLevelFlag string

	cfg    *config.Config
	logger *logrus.Logger
}

func (c *commandContext) init(logOut io.Writer) error {
	cfg, _, err := config.Load(c.configFlag)
	if err != nil {
		return err
	}
	if c.catalogFlag != "" {
		path, err := config.ExpandPath(c.catalogFlag)
		if err != nil {
			return err
		}
		cfg.Catalog.Path = path
	}
	if c.logLevelFlag != "" {
		cfg.Logging.Level = c.logLevelFlag
	}
	logger, err := newLogger(cfg.Logging, logOut)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

func newLogger(cfg config.Logging, out io.Writer) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	level := logrus.InfoLevel
	if cfg.Level != "" {
		parsed, err := logrus.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		level = parsed
	}
	logger.SetLevel(level)
	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}
	return logger, nil
}

// loadCatalog reads the configured catalog from CSV or SQLite.
func (c *commandContext) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	path := c.cfg.Catalog.Path
	log := c.logger.WithFields(logrus.Fields{"path": path, "source": c.cfg.SourceKind()})
	var (
		cat *catalog.Catalog
		err error
	)
	switch c.cfg.SourceKind() {
	case config.SourceSQLite:
		cat, err = loadSQLiteCatalog(ctx, path)
	default:
		cat, err = catalog.LoadCSVFile(path)
	}
	if err != nil {
		return nil, err
	}
	log.WithField("items", cat.Len()).Debug("catalog loaded")
	return cat, nil
}

func loadSQLiteCatalog(ctx context.Context, path string) (*catalog.Catalog, error) {
	db, err := engine.OpenContext(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	store, err := catalog.NewStore(ctx, db)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx)
}

func (c *commandContext) newEngine(ctx context.Context) (*recommend.Engine, error) {
	cat, err := c.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	filter := vector.DefaultTokenFilter
	if n := c.cfg.Features.MinTokenLength; n != filter.MinLength {
		filter = vector.NewTokenFilter(fmt.Sprintf("%s-min%d", filter.Version, n), n, vector.EnglishStopWords)
	}
	return recommend.New(cat,
		recommend.WithMaxFeatures(c.cfg.Features.MaxFeatures),
		recommend.WithTokenFilter(filter),
		recommend.WithLogger(c.logger),
	)
}
