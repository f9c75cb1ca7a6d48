package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"os"

	"github.com/wikiweb/wikictl/internal/client/api"
	"github.com/wikiweb/wikictl/internal/client/avatars"
	"github.com/wikiweb/wikictl/internal/client/config"
	"github.com/wikiweb/wikictl/internal/client/models"
	"github.com/wikiweb/wikictl/internal/client/repositories/localstore"
	"github.com/wikiweb/wikictl/internal/client/services"
	"github.com/wikiweb/wikictl/internal/client/session"
	"github.com/wikiweb/wikictl/internal/logging"

	_ "modernc.org/sqlite"
)

// directoryLoader is the slice of the directory service the CLI needs.
// *services.DirectoryService satisfies it; tests provide a stub.
type directoryLoader interface {
	Load(ctx context.Context, current *models.User, query string) (*services.Directory, error)
}

// documentsAPI is the document transport surface the CLI needs.
// *api.DocumentsAPI satisfies it.
type documentsAPI interface {
	List(ctx context.Context) ([]models.Document, error)
	Get(ctx context.Context, id string) (*models.Document, error)
	Create(ctx context.Context, title, content string) (*models.Document, error)
	Update(ctx context.Context, id string, patch models.DocumentPatch) (*models.Document, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, docID, revID string) (*models.Document, error)
}

// userSearcher is the search slice of the users transport.
type userSearcher interface {
	Search(ctx context.Context, q string) ([]models.User, error)
}

// avatarStore is the read/write avatar cache surface.
type avatarStore interface {
	Get(ctx context.Context, email string) string
	Set(ctx context.Context, email, url string)
}

type App struct {
	config    *config.Config
	auth      services.AuthService
	directory directoryLoader
	docs      documentsAPI
	users     userSearcher
	sessions  *session.Store
	avatars   avatarStore
	log       logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	currentUser *models.User
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	db, err := localstore.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	sessions := session.NewStore(db)
	httpClient := api.New(c.APIBaseURL, sessions)

	authAPI := api.NewAuthAPI(httpClient)
	usersAPI := api.NewUsersAPI(httpClient)
	docsAPI := api.NewDocumentsAPI(httpClient)

	av := avatars.NewCache(localstore.NewSQLiteRepository(db))
	log := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	return &App{
		config:    c,
		auth:      services.NewAuthService(authAPI, sessions),
		directory: services.NewDirectoryService(usersAPI, av, log),
		docs:      docsAPI,
		users:     usersAPI,
		sessions:  sessions,
		avatars:   av,
		log:       log,
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run restores any stored session and starts the REPL. It blocks until the
// user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.restoreSession(ctx)
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.currentUser != nil
}
