// Command bench runs a synthetic workload against an ordered dictionary and
// optionally exposes Prometheus metrics.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/ordlist/dict"
	pmet "github.com/IvanBrykalov/ordlist/metrics/prom"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flagCfg := defaultConfig()
	cmd := &cobra.Command{
		Use:           "bench",
		Short:         "Run a find/insert/remove workload against an ordered dictionary",
		SilenceUsage: true,
	}
	path := registerFlags(cmd.Flags(), &flagCfg)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := resolve(cmd.Flags(), *path, flagCfg)
		if err != nil {
			return err
		}
		return run(cmd.Context(), cfg)
	}
	return cmd
}

func run(ctx context.Context, cfg config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	opt := dict.Options[int, int]{Logger: &log}
	if cfg.HTTP != "" {
		opt.Metrics = pmet.New(nil, "ordlist", "bench", nil)
	}
	d := dict.NewOrdered[int, int](opt)

	g, ctx := errgroup.WithContext(ctx)
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	if cfg.HTTP != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{Addr: cfg.HTTP, Handler: mux}
		g.Go(func() error {
			log.Info().Str("addr", cfg.HTTP).Msg("metrics: serving")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	var st stats
	g.Go(func() error {
		defer stop()
		st = workload(ctx, d, cfg)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().
		Int("ops", st.ops).
		Dur("elapsed", st.elapsed).
		Int("len", d.Len()).
		Msg("done")
	fmt.Printf("keys=%d ops=%d (%.0f ops/s) seed=%d\n",
		cfg.Keys, st.ops, float64(st.ops)/st.elapsed.Seconds(), cfg.Seed)
	fmt.Printf("finds=%d hits=%d inserts=%d replaces=%d removes=%d Len()=%d\n",
		st.finds, st.hits, st.inserts, st.replaces, st.removes, d.Len())
	if minE, err := d.MinEntry(); err == nil {
		maxE, _ := d.MaxEntry()
		fmt.Printf("min=%v max=%v\n", minE, maxE)
	}
	return nil
}

type stats struct {
	ops, finds, hits, inserts, replaces, removes int
	elapsed                                       time.Duration
}

// workload drives d from a single goroutine (dictionaries are not
// goroutine-safe) until cfg.Ops operations ran or ctx is done.
func workload(ctx context.Context, d dict.Dictionary[int, int], cfg config) stats {
	r := rand.New(rand.NewSource(cfg.Seed))

	pl := cfg.Preload
	if pl == 0 {
		pl = cfg.Keys / 2
	}
	for i := 0; i < pl; i++ {
		d.Insert(r.Intn(cfg.Keys), i)
	}

	var st stats
	start := time.Now()
	for st.ops < cfg.Ops {
		if st.ops&1023 == 0 && ctx.Err() != nil {
			break
		}
		k := r.Intn(cfg.Keys)
		switch p := r.Intn(100); {
		case p < cfg.FindPct:
			st.finds++
			if _, ok := d.Find(k); ok {
				st.hits++
			}
		case p < cfg.FindPct+cfg.RemPct:
			if _, ok := d.Remove(k); ok {
				st.removes++
			}
		default:
			if _, replaced := d.Insert(k, st.ops); replaced {
				st.replaces++
			} else {
				st.inserts++
			}
		}
		st.ops++
	}
	st.elapsed = time.Since(start)
	return st
}
