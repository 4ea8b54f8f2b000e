package vault

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Composer starts the compose project that runs the Vault container.
// Satisfied by *compose.Client.
type Composer interface {
	Up(ctx context.Context, dir string) error
}

// SetupOptions configures the setup orchestration
type SetupOptions struct {
	// ServiceDir is the compose project directory for the Vault service
	ServiceDir string
	// KeysFile is where init key material is persisted
	KeysFile string
	// Shares and Threshold are passed to operator init
	Shares    int
	Threshold int

	// ReadyTimeout bounds the wait for the HTTP endpoint after compose up
	ReadyTimeout time.Duration
	// PollInterval is the health poll cadence
	PollInterval time.Duration

	// InitAttempts is how many times operator init is retried
	InitAttempts int

	// StoreToken persists the root token after a successful setup
	StoreToken func(token string) error
}

func (o *SetupOptions) applyDefaults() {
	if o.ReadyTimeout == 0 {
		o.ReadyTimeout = 90 * time.Second
	}
	if o.PollInterval == 0 {
		o.PollInterval = 3 * time.Second
	}
	if o.InitAttempts == 0 {
		o.InitAttempts = 5
	}
	if o.Shares == 0 {
		o.Shares = 5
	}
	if o.Threshold == 0 {
		o.Threshold = 3
	}
}

// Setup brings a local Vault from any state to initialized, unsealed, and
// ready, with KV v2 mounted at secret/. It is idempotent: each phase checks
// state before acting.
func Setup(ctx context.Context, client *Client, composer Composer, opts SetupOptions) (*KeyMaterial, error) {
	opts.applyDefaults()

	fmt.Println("== Starting Vault service ==")
	if opts.ServiceDir == "" {
		return nil, fmt.Errorf("vault service directory is not configured")
	}
	if err := composer.Up(ctx, opts.ServiceDir); err != nil {
		return nil, fmt.Errorf("failed to start vault service: %w", err)
	}

	fmt.Println("== Waiting for Vault to respond ==")
	if err := waitForReachable(ctx, client, opts); err != nil {
		return nil, err
	}

	material, err := initializeOrLoadKeys(ctx, client, opts)
	if err != nil {
		return nil, err
	}

	if err := unseal(ctx, client, material, opts); err != nil {
		return nil, err
	}

	authed := client.WithToken(material.RootToken)
	if err := authed.TokenLookupSelf(ctx); err != nil {
		return nil, fmt.Errorf("root token rejected after unseal: %w", err)
	}

	fmt.Println("== Ensuring KV v2 at secret/ ==")
	if err := authed.EnsureKVv2(ctx, DefaultMount); err != nil {
		return nil, err
	}

	if opts.StoreToken != nil {
		if err := opts.StoreToken(material.RootToken); err != nil {
			return nil, fmt.Errorf("failed to store root token: %w", err)
		}
	}

	return material, nil
}

// SetupWithAppRole runs Setup and then provisions an AppRole, returning its
// credentials. When saveTo is non-empty the credentials are also written to
// a 0600 JSON file.
func SetupWithAppRole(ctx context.Context, client *Client, composer Composer, opts SetupOptions, role string, policies []string, saveTo string) (*AppRoleCredentials, error) {
	material, err := Setup(ctx, client, composer, opts)
	if err != nil {
		return nil, err
	}

	fmt.Printf("== Setting up AppRole %q ==\n", role)
	authed := client.WithToken(material.RootToken)

	if err := authed.EnableAppRoleAuth(ctx); err != nil {
		return nil, err
	}
	if err := authed.CreateAppRole(ctx, role, policies, ""); err != nil {
		return nil, err
	}

	creds, err := authed.AppRoleCredentialsFor(ctx, role)
	if err != nil {
		return nil, err
	}

	if saveTo != "" {
		data, err := json.MarshalIndent(creds, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal approle credentials: %w", err)
		}
		if err := os.WriteFile(saveTo, data, 0600); err != nil {
			return nil, fmt.Errorf("failed to save approle credentials: %w", err)
		}
		fmt.Printf("✓ AppRole credentials saved to %s\n", saveTo)
	}

	return creds, nil
}

// waitForReachable polls health until the endpoint answers at all
func waitForReachable(ctx context.Context, client *Client, opts SetupOptions) error {
	deadline := time.Now().Add(opts.ReadyTimeout)
	for time.Now().Before(deadline) {
		if client.State(ctx) != StateDown {
			fmt.Println("✓ Vault endpoint is responding")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.PollInterval):
		}
	}
	return fmt.Errorf("vault did not become reachable within %s", opts.ReadyTimeout)
}

// initializeOrLoadKeys returns key material, running operator init when
// Vault has never been initialized and loading the saved file otherwise
func initializeOrLoadKeys(ctx context.Context, client *Client, opts SetupOptions) (*KeyMaterial, error) {
	fmt.Println("== Checking initialization status ==")

	state := client.State(ctx)
	if state == StateSealed || state == StateUnsealed || state == StateStandby {
		fmt.Println("Vault is already initialized, loading stored keys")
		if !KeyMaterialExists(opts.KeysFile) {
			return nil, fmt.Errorf("vault is initialized but keys file %s is missing - it was initialized outside launchbay", opts.KeysFile)
		}
		return LoadKeyMaterial(opts.KeysFile)
	}

	fmt.Println("Vault is not initialized, running operator init")
	var lastErr error
	for attempt := 1; attempt <= opts.InitAttempts; attempt++ {
		resp, err := client.Initialize(ctx, opts.Shares, opts.Threshold)
		if err == nil {
			material := KeyMaterialFromInit(resp, opts.Shares, opts.Threshold)
			if err := SaveKeyMaterial(opts.KeysFile, material); err != nil {
				return nil, err
			}
			fmt.Printf("✓ Vault initialized (%d shares, threshold %d), keys saved to %s\n",
				opts.Shares, opts.Threshold, opts.KeysFile)
			return material, nil
		}

		lastErr = err
		// Vault sometimes refuses init right after the container starts
		backoff := time.Duration(attempt) * opts.PollInterval
		fmt.Printf("Init attempt %d/%d failed, retrying in %s...\n", attempt, opts.InitAttempts, backoff)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("vault initialization failed after %d attempts: %w", opts.InitAttempts, lastErr)
}

// unseal clears the seal using stored key material, skipping when already
// unsealed
func unseal(ctx context.Context, client *Client, material *KeyMaterial, opts SetupOptions) error {
	fmt.Println("== Unsealing Vault ==")

	state := client.State(ctx)
	if state == StateUnsealed || state == StateStandby {
		fmt.Println("✓ Vault is already unsealed")
		return nil
	}

	keys := material.ThresholdKeys()
	if len(keys) == 0 {
		return fmt.Errorf("no unseal keys in key material")
	}

	if err := client.UnsealWithKeys(ctx, keys); err != nil {
		return fmt.Errorf("unseal failed: %w", err)
	}

	// The health endpoint can lag the unseal response briefly
	deadline := time.Now().Add(opts.ReadyTimeout)
	for time.Now().Before(deadline) {
		state := client.State(ctx)
		if state == StateUnsealed || state == StateStandby {
			fmt.Println("✓ Vault is unsealed")
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(opts.PollInterval):
		}
	}

	return fmt.Errorf("vault still reports sealed after submitting %d keys", len(keys))
}

// PrintSummary prints the post-setup usage hints
func PrintSummary(addr, keysFile, rootToken string) {
	fmt.Println()
	fmt.Println("== Vault setup complete ==")
	fmt.Printf("Root token: %s\n", rootToken)
	fmt.Printf("Keys file:  %s\n", keysFile)
	fmt.Println()
	fmt.Println("For shell usage:")
	fmt.Printf("  export VAULT_ADDR=%s\n", addr)
	fmt.Printf("  export VAULT_TOKEN=%s\n", rootToken)
}
