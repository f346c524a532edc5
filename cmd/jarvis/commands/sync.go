package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jarvishq/jarvis/internal/config"
	"github.com/jarvishq/jarvis/internal/persist"
	"github.com/jarvishq/jarvis/internal/state"
)

// NewSyncCmd creates the sync command: login to a sync server, push the
// local state document, or pull the server copy over the local one.
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync local state with a jarvis server",
	}
	cmd.AddCommand(newSyncLoginCmd())
	cmd.AddCommand(newSyncLogoutCmd())
	cmd.AddCommand(newSyncPushCmd())
	cmd.AddCommand(newSyncPullCmd())
	return cmd
}

// envelope is the server's standard response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

func syncClient() *http.Client {
	return &http.Client{Timeout: 30 * time.Second}
}

func callServer(ctx context.Context, cfg *config.ClientConfig, method, path string, body []byte) (*envelope, int, error) {
	if cfg.ServerURL == "" {
		return nil, 0, fmt.Errorf("no server configured: run 'jarvis sync login' first")
	}
	url := strings.TrimRight(cfg.ServerURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+cfg.Token)
	}

	resp, err := syncClient().Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("unexpected response (%d): %s", resp.StatusCode, data)
	}
	return &env, resp.StatusCode, nil
}

func serverError(env *envelope, status int) error {
	if env != nil && env.Message != "" {
		return fmt.Errorf("server returned %d: %s", status, env.Message)
	}
	return fmt.Errorf("server returned %d", status)
}

func newSyncLoginCmd() *cobra.Command {
	var (
		server   string
		email    string
		password string
		register bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to a sync server and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadClient(dataDir)
			if err != nil {
				return err
			}
			if server != "" {
				cfg.ServerURL = server
			}
			if cfg.ServerURL == "" {
				return fmt.Errorf("--server is required on first login")
			}
			if password == "" {
				password = os.Getenv("JARVIS_PASSWORD")
			}
			if password == "" {
				return fmt.Errorf("--password or JARVIS_PASSWORD is required")
			}

			path := "/api/v1/auth/login"
			if register {
				path = "/api/v1/auth/register"
			}
			body, err := json.Marshal(map[string]string{"email": email, "password": password})
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			env, status, err := callServer(ctx, cfg, "POST", path, body)
			if err != nil {
				return err
			}
			if status != http.StatusOK && status != http.StatusCreated {
				return serverError(env, status)
			}

			var session struct {
				Token string `json:"token"`
			}
			if err := json.Unmarshal(env.Data, &session); err != nil || session.Token == "" {
				return fmt.Errorf("server did not return a session token")
			}
			cfg.Token = session.Token
			if err := config.SaveClient(dataDir, cfg); err != nil {
				return err
			}
			fmt.Printf("Logged in to %s as %s\n", cfg.ServerURL, email)
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "Server base URL (e.g. https://jarvis.example.com)")
	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (or JARVIS_PASSWORD)")
	cmd.Flags().BoolVar(&register, "register", false, "Create the account instead of logging in")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newSyncLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadClient(dataDir)
			if err != nil {
				return err
			}
			if cfg.Token == "" {
				fmt.Println("Not logged in.")
				return nil
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			// Best effort: clear the local token even if the server call
			// fails.
			if _, _, err := callServer(ctx, cfg, "POST", "/api/v1/auth/logout", nil); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			}
			cfg.Token = ""
			if err := config.SaveClient(dataDir, cfg); err != nil {
				return err
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newSyncPushCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Upload the local state document to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}
			cfg, err := config.LoadClient(dataDir)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			storage, err := openStorage(dataDir)
			if err != nil {
				return err
			}
			raw, err := storage.Read(ctx)
			if err != nil {
				if errors.Is(err, persist.ErrNotFound) {
					return fmt.Errorf("no local state to push")
				}
				return fmt.Errorf("failed to read local state: %w", err)
			}
			// Normalize before upload so the server stores a current-schema
			// document.
			document, err := json.Marshal(state.Load(raw))
			if err != nil {
				return fmt.Errorf("failed to encode state: %w", err)
			}

			env, status, err := callServer(ctx, cfg, "PUT", "/api/v1/sync/state", document)
			if err != nil {
				return err
			}
			if status != http.StatusOK {
				return serverError(env, status)
			}
			fmt.Println("Pushed local state to server.")
			return nil
		},
	}
}

func newSyncPullCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Replace local state with the server copy",
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.DefaultDataDir()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(dataDir, 0o700); err != nil {
				return fmt.Errorf("failed to create data directory: %w", err)
			}
			cfg, err := config.LoadClient(dataDir)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			env, status, err := callServer(ctx, cfg, "GET", "/api/v1/sync/state", nil)
			if err != nil {
				return err
			}
			if status == http.StatusNotFound {
				return fmt.Errorf("no state stored on the server yet: push first")
			}
			if status != http.StatusOK {
				return serverError(env, status)
			}

			var doc struct {
				Document json.RawMessage `json:"document"`
			}
			if err := json.Unmarshal(env.Data, &doc); err != nil {
				return fmt.Errorf("unexpected server response: %w", err)
			}
			// Run the document through migrate+sanitize before it becomes
			// the local state.
			normalized, err := json.Marshal(state.Load(doc.Document))
			if err != nil {
				return fmt.Errorf("failed to encode state: %w", err)
			}

			storage, err := openStorage(dataDir)
			if err != nil {
				return err
			}
			if err := storage.Write(ctx, normalized); err != nil {
				return fmt.Errorf("failed to write local state: %w", err)
			}
			fmt.Println("Pulled server state into local store.")
			return nil
		},
	}
}
