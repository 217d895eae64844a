package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Soham964/AGRO/internal/client/api"
	"github.com/Soham964/AGRO/internal/client/config"
	"github.com/Soham964/AGRO/internal/client/repositories/metadata"
	"github.com/Soham964/AGRO/internal/client/services"
	"github.com/Soham964/AGRO/internal/client/storage"
	"github.com/Soham964/AGRO/internal/logging"
)

// App wires the storefront together: gateway, session and cart stores,
// catalog and orders services, and the interactive command loop.
type App struct {
	config  *config.Config
	session services.SessionStore
	cart    services.CartStore
	catalog services.Catalog
	orders  services.Orders
	logger  logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init local database: %w", err)
	}

	tokens := metadata.NewSQLiteRepository(db)
	gateway := api.NewHTTPClient(cfg.BaseURL, cfg.RequestTimeout, tokens)
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	session := services.NewSessionStore(gateway, logger)
	cart := services.NewCartStore(gateway, session, logger)

	return &App{
		config:  cfg,
		session: session,
		cart:    cart,
		catalog: services.NewCatalog(gateway),
		orders:  services.NewOrders(gateway),
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run restores a stored session, greets a returning user, and enters the
// command loop until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	a.session.Restore(ctx)
	if user := a.session.User(); user != nil {
		fmt.Fprintf(a.out, "Welcome back, %s!\n", user.FullName())
	}

	fmt.Fprintln(a.out, "AGRO marketplace (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt suffix: the logged-in user and, when non-empty,
// the cart size.
func (a *App) status() string {
	user := a.session.User()
	if user == nil {
		return ""
	}
	if n := a.cart.CartItemCount(); n > 0 {
		return fmt.Sprintf("(%s, cart:%d)", user.Username, n)
	}
	return fmt.Sprintf("(%s)", user.Username)
}
