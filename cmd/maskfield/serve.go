package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-maskfield"
	"github.com/goliatone/go-maskfield/components/usstates"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the state search and format endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := newServeMux(a.logger)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              a.v.GetString("serve.addr"),
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("serve: listening", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			a.logger.Info("serve: shutting down")
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	_ = a.v.BindPFlag("serve.addr", cmd.Flags().Lookup("addr"))
	return cmd
}

func newServeMux(logger *slog.Logger) (http.Handler, error) {
	mux := http.NewServeMux()
	if _, err := usstates.RegisterRoutes(mux, "", usstates.Config{}); err != nil {
		return nil, err
	}
	mux.Handle("/api/format", formatHandler(logger))
	return mux, nil
}

type formatResponse struct {
	Text     string `json:"text"`
	Template string `json:"template,omitempty"`
	Valid    bool   `json:"valid"`
	Message  string `json:"message,omitempty"`
	Final    bool   `json:"final"`
}

// formatHandler serves GET /api/format?type=phone&value=555&final=1.
func formatHandler(logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		q := r.URL.Query()
		spec, value := q.Get("type"), q.Get("value")
		final, _ := strconv.ParseBool(q.Get("final"))
		if spec == "" {
			writeJSONError(w, http.StatusBadRequest, "missing type")
			return
		}

		resp := formatResponse{Final: final}
		if final {
			out, err := maskfield.Finalize(spec, value)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			resp.Text, resp.Template = out.Text, out.Template
			resp.Valid, resp.Message = out.Result.Valid, out.Result.Message
		} else {
			text, err := maskfield.Format(spec, value)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, err.Error())
				return
			}
			res, _ := maskfield.ValidateLive(spec, value)
			resp.Text, resp.Valid, resp.Message = text, res.Valid, res.Message
		}

		logger.Debug("serve: format", "type", spec, "final", final, "valid", resp.Valid)
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			logger.Warn("serve: encode response", "err", err)
		}
	})
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
