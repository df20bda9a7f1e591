package main

import (
	"context"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jotoba/jotoba-go/internal/config"
	"github.com/jotoba/jotoba-go/internal/logging"
	"github.com/jotoba/jotoba-go/internal/query"
	"github.com/jotoba/jotoba-go/internal/resource"
	"github.com/jotoba/jotoba-go/internal/search"
	"github.com/jotoba/jotoba-go/internal/sentence"
	"github.com/jotoba/jotoba-go/internal/suggest"
	"github.com/jotoba/jotoba-go/internal/workerpool"
)

// buildEngine builds the search.Engine a request handler needs to answer
// a query: the built word/name indices, the kanji/sentence resource
// handles, the sentence reader used for word segmentation, and the
// suggestion trie. Built once at startup and shared read-only across the
// worker pool.
func buildEngine(rs *resource.ResourceStorage, log *zerolog.Logger) (*search.Engine, error) {
	reader, err := sentence.NewReader()
	if err != nil {
		return nil, err
	}

	e := &search.Engine{
		Kanji:       rs.Kanji(),
		Sentences:   rs.Sentences(),
		Reader:      reader,
		Trie:        suggest.NewTrie(),
		ShowEnglish: true,
	}

	logging.Timed(log, "build_word_index", func() (int, error) {
		e.Words = search.BuildWordIndex(rs.Words())
		return rs.Words().Len(), nil
	})
	logging.Timed(log, "build_name_index", func() (int, error) {
		e.Names = search.BuildNameIndex(rs.Names())
		return rs.Names().Len(), nil
	})
	logging.Timed(log, "build_suggestion_trie", func() (int, error) {
		populateSuggestionTrie(e.Trie, rs)
		return e.Trie.Len(), nil
	})

	return e, nil
}

// populateSuggestionTrie seeds the completion trie from every kana reading,
// kanji literal, and name reading in storage, frequency-weighted by
// common status.
func populateSuggestionTrie(t *suggest.Trie, rs *resource.ResourceStorage) {
	rs.Words().All(func(_ uint32, w *resource.Word) bool {
		freq := 1
		if w.IsCommon {
			freq = 10
		}
		t.Insert(w.Readings.Kana, freq)
		if w.Readings.Kanji != nil {
			t.Insert(*w.Readings.Kanji, freq)
		}
		return true
	})
	rs.Kanji().All(func(lit rune, _ *resource.Kanji) bool {
		t.Insert(string(lit), 5)
		return true
	})
	rs.Names().All(func(_ uint32, n *resource.Name) bool {
		t.Insert(n.Kana, 1)
		return true
	})
}

// newStartCmd builds the resource-backed search engine, dispatches one
// readiness query through the worker pool to prove the parse -> produce
// -> sink -> page pipeline is wired end to end, then blocks until
// interrupted. No request transport is attached: after the readiness
// query nothing else is submitted to the pool.
func newStartCmd() *cobra.Command {
	var poolSize int

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Build the search engine from the resource store and run until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.OutOrStdout(), zerolog.InfoLevel)
			log := logging.Component(&logger, "start")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			rs, err := loadResources(cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to load resource files")
				return err
			}
			if err := rs.Check(); err != nil {
				log.Error().Err(err).Msg("resource check failed")
				return err
			}

			eng, err := buildEngine(rs, &logger)
			if err != nil {
				log.Error().Err(err).Msg("failed to build search engine")
				return err
			}

			if poolSize <= 0 {
				poolSize = runtime.NumCPU()
			}
			pool := workerpool.New(poolSize, poolSize*4)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			pool.Start(ctx)
			defer pool.Close()

			if err := readinessSearch(ctx, pool, eng, log); err != nil {
				log.Error().Err(err).Msg("readiness search failed")
				return err
			}

			log.Info().
				Str("listen_address", cfg.Server.ListenAddress).
				Int("workers", poolSize).
				Int("words", rs.Words().Len()).
				Int("names", rs.Names().Len()).
				Int("suggestions", eng.Trie.Len()).
				Msg("search engine ready")

			<-ctx.Done()
			log.Info().Msg("shutting down")
			return nil
		},
	}

	cmd.Flags().IntVar(&poolSize, "workers", 0, "number of search worker goroutines (default: number of CPUs)")
	return cmd
}

// readinessSearch dispatches one bare-sequence query ("1") onto the pool
// as a real search.Search call, proving the worker pool actually executes
// search requests rather than idling -- a missing word with that sequence
// is expected and not an error, only a dispatch/exec failure is.
func readinessSearch(ctx context.Context, pool *workerpool.Pool, eng *search.Engine, log *zerolog.Logger) error {
	q := query.Parse("1", query.TargetWords, 1, 1, "eng")
	result, err := workerpool.Dispatch(pool, ctx, func(ctx context.Context) (search.SearchResult, error) {
		return search.Search(&q, eng), nil
	})
	if err != nil {
		return err
	}
	log.Debug().Int("items", len(result.Items)).Int("total", result.TotalItems).Msg("readiness search dispatched")
	return nil
}
