package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/ariel-frischer/notifybehaviour/internal/eventbus"
	"github.com/ariel-frischer/notifybehaviour/internal/httpapi"
	"github.com/ariel-frischer/notifybehaviour/internal/reactive"
	"github.com/ariel-frischer/notifybehaviour/internal/scenario"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Replay a notification scenario",
	Long: `Replay a notification scenario.

Every entity in the scenario is created, its steps are replayed concurrently
and entities marked with detach are deleted at the end. A summary table is
printed when the replay finishes.

With --metrics-addr (or metrics_addr in the config) an HTTP server exposes
/metrics, /healthz and /behaviours during the replay and keeps serving until
interrupted.`,
	Example: `  notifyctl replay build.yaml
  notifyctl replay build.yaml --metrics-addr 127.0.0.1:9102 --max-parallel 4`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSession(cmd)
		if err != nil {
			return err
		}

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("metrics-addr")
		if addr == "" {
			addr = s.cfg.MetricsAddr
		}
		maxParallel, _ := cmd.Flags().GetInt("max-parallel")

		provider := s.newProvider()
		defer provider.Close()

		bus := eventbus.New()
		events, unsubscribe := bus.Subscribe(64)
		logged := make(chan struct{})
		go func() {
			defer close(logged)
			logEvents(s.log, events)
		}()
		defer func() {
			unsubscribe()
			<-logged
		}()

		graph := reactive.NewGraph(bus)
		graph.RegisterProvider(provider)

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		var srv *http.Server
		if addr != "" {
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listening on %s: %w", addr, err)
			}
			srv = &http.Server{Handler: httpapi.NewMux(provider), ReadHeaderTimeout: 5 * time.Second}
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					s.log.Error().Err(err).Msg("metrics server stopped")
				}
			}()
			defer shutdown(s.log, srv)
			s.log.Info().Str("addr", ln.Addr().String()).Msg("serving metrics")
		}

		runner := scenario.NewRunner(graph, provider, s.log)
		runner.MaxParallel = maxParallel
		if p := newReplayProgress(cmd.ErrOrStderr(), s.log); p != nil {
			runner.Progress = p
			defer p.stop()
		}

		report, err := runner.Run(ctx, sc)
		printReport(cmd.OutOrStdout(), report)
		if err != nil {
			return fmt.Errorf("replay: %w", err)
		}

		if srv != nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Replay finished, serving metrics until interrupted")
			<-ctx.Done()
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().String("metrics-addr", "", "Serve metrics on host:port while replaying")
	replayCmd.Flags().Int("max-parallel", 0, "Maximum entities replayed at once (0 = unlimited)")

	rootCmd.AddCommand(replayCmd)
}

func logEvents(log zerolog.Logger, events <-chan eventbus.Event) {
	for ev := range events {
		e := log.Debug().Str("event", ev.Type)
		if data, ok := ev.Data.(eventbus.EntityEvent); ok {
			e = e.Str("entity", data.ID).Str("type", data.TypeName)
		}
		e.Msg("graph event")
	}
}

func shutdown(log zerolog.Logger, srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("graceful shutdown error")
	}
}

func printReport(w io.Writer, report *scenario.Report) {
	if report == nil {
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ENTITY\tATTACHED\tSTEPS\tDELETED\tSUMMARY\tBODY")
	for _, e := range report.Entities {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%t\t%s\t%s\n",
			e.Name, e.Attached, e.Steps, e.Deleted, e.Notification.Summary, e.Notification.Body)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d/%d entities attached in %s\n",
		report.Attached(), len(report.Entities), report.Elapsed.Round(time.Millisecond))
}
