package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp"
	"go.uber.org/zap"

	"github.com/kotaroooo0/ristorante"
)

// openStorage returns the configured snapshot storage and its closer.
func openStorage(env *environment) (ristorante.Storage, func() error, error) {
	switch env.cfg.Storage.Driver {
	case "mysql":
		db, err := ristorante.NewDBClient(env.cfg.Storage.MySQL.DBConfig())
		if err != nil {
			return nil, nil, err
		}
		storage := ristorante.NewStorageRdbImpl(db)
		if err := storage.Migrate(); err != nil {
			db.Close()
			return nil, nil, err
		}
		return storage, db.Close, nil
	default:
		return ristorante.NewStorageGobImpl(env.cfg.Storage.GobPath), func() error { return nil }, nil
	}
}

func runBuild(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	in := fs.String("in", "documents.json", "file of extracted documents")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		return err
	}
	var docs []ristorante.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("%s: %w", *in, err)
	}

	tf, err := env.cfg.Index.TfVariant()
	if err != nil {
		return err
	}
	indexer := ristorante.NewIndexer(ristorante.NewEnglishNormalizer(),
		ristorante.WithTfVariant(tf),
		ristorante.WithIndexerLogger(env.logger))
	snapshot, err := indexer.Build(docs)
	if err != nil {
		return err
	}

	storage, closeStorage, err := openStorage(env)
	if err != nil {
		return err
	}
	defer closeStorage()
	if err := storage.SaveSnapshot(snapshot); err != nil {
		return err
	}
	env.logger.Info("snapshot saved",
		zap.String("driver", env.cfg.Storage.Driver),
		zap.Int("documents", snapshot.Documents.Len()),
		zap.Int("terms", snapshot.Vocabulary.Size()))
	return nil
}

func runSearch(ctx context.Context, env *environment, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	mode := fs.String("mode", "ranked", "conjunctive, ranked or composite")
	k := fs.Int("k", env.cfg.Search.DefaultLimit, "number of results")
	debug := fs.Bool("debug", false, "dump full result records")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text := strings.Join(fs.Args(), " ")

	storage, closeStorage, err := openStorage(env)
	if err != nil {
		return err
	}
	defer closeStorage()
	snapshot, err := ristorante.LoadSnapshot(storage)
	if err != nil {
		return err
	}

	normalizer := ristorante.NewEnglishNormalizer()
	opt := ristorante.WithSearcherLogger(env.logger)
	var results interface{}
	switch *mode {
	case "conjunctive":
		docs, err := ristorante.NewConjunctiveQuery(text, normalizer).Searcher(snapshot, opt).Search()
		if err != nil {
			return err
		}
		for _, d := range docs {
			fmt.Printf("%d\t%s\t%s\t%s\n", d.ID, d.Name, d.City, d.Website)
		}
		results = docs
	case "ranked", "composite":
		var docs []ristorante.ScoredDocument
		if *mode == "ranked" {
			docs, err = ristorante.NewRankedQuery(text, *k, normalizer).Searcher(snapshot, opt).Search()
		} else {
			scorer := ristorante.NewScorer(env.cfg.Scorer)
			docs, err = ristorante.NewCompositeQuery(text, *k, normalizer, scorer).Searcher(snapshot, opt).Search()
		}
		if err != nil {
			return err
		}
		for _, d := range docs {
			score := "-"
			if d.Score != nil {
				score = fmt.Sprintf("%.4f", *d.Score)
			}
			fmt.Printf("%d\t%.4f\t%s\t%s\t%s\n", d.ID, d.Similarity, score, d.Name, d.City)
		}
		results = docs
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}

	if *debug {
		pp.Println(results)
	}
	return nil
}
