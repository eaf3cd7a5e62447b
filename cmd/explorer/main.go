// Command explorer is a terminal client for the destination catalog: search
// and inspect destinations, browse and curate lists, and review them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	consolemap "github.com/destination-europe/explorer-client/internal/adapters/console/maprender"
	memdirectory "github.com/destination-europe/explorer-client/internal/adapters/memory/directory"
	memlistrepo "github.com/destination-europe/explorer-client/internal/adapters/memory/listrepo"
	restauthgw "github.com/destination-europe/explorer-client/internal/adapters/rest/authgw"
	restdirectory "github.com/destination-europe/explorer-client/internal/adapters/rest/directory"
	restlistrepo "github.com/destination-europe/explorer-client/internal/adapters/rest/listrepo"
	sqlitecredstore "github.com/destination-europe/explorer-client/internal/adapters/sqlite/credstore"
	"github.com/destination-europe/explorer-client/internal/app/auth"
	"github.com/destination-europe/explorer-client/internal/app/browse"
	"github.com/destination-europe/explorer-client/internal/app/session"
	"github.com/destination-europe/explorer-client/internal/domain"
	platformclock "github.com/destination-europe/explorer-client/internal/platform/clock"
	"github.com/destination-europe/explorer-client/internal/platform/config"
	"github.com/destination-europe/explorer-client/internal/platform/logging"
	"github.com/destination-europe/explorer-client/internal/ports/out/directory"
	listrepoport "github.com/destination-europe/explorer-client/internal/ports/out/listrepo"
)

const usage = `usage: explorer <command> [flags]

commands:
  signup               register a new account
  resend-verification  resend the account verification email
  login                log in and store the session token
  logout               clear the stored session token
  whoami               print the logged-in nickname
  search               search destinations by field
  get                  look up a destination by id
  coords               center the map on a destination
  suggest              autocomplete destination names
  countries            list the dataset's countries
  lists                browse public and personal lists
  create-list          create a curated list
  edit-list            change one of your lists
  delete-list          delete one of your lists
  review               add a review to a list
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	verbose := os.Getenv("EXPLORER_VERBOSE") != ""
	log := logging.NewLogger(verbose)

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Error("invalid config: %v", err)
		os.Exit(1)
	}

	creds, err := sqlitecredstore.Open(cfg.CredentialDBPath)
	if err != nil {
		log.Error("open credential store: %v", err)
		os.Exit(1)
	}
	defer creds.Close()

	authSvc := auth.NewService(restauthgw.NewClient(cfg.AuthBaseURL, cfg.HTTPTimeout), creds)

	// Backend selection:
	// - rest (default): talk to the live API
	// - memory: seeded in-process catalog and list store, for offline demos
	var (
		dirClient  directory.Client
		listClient listrepoport.Client
	)
	switch getenv("EXPLORER_BACKEND", "rest") {
	case "memory":
		dirClient = memdirectory.NewClient(demoDestinations()...)
		mem := memlistrepo.NewClient(platformclock.NewSystemClock())
		ctx := context.Background()
		if cred := authSvc.Credential(ctx); cred != "" {
			mem.Authorize(cred, authSvc.Nickname(ctx))
		}
		listClient = mem
	default:
		dirClient = restdirectory.NewClient(cfg.DirectoryBaseURL, cfg.HTTPTimeout)
		listClient = restlistrepo.NewClient(cfg.ListsBaseURL, cfg.HTTPTimeout)
	}

	sync := browse.New(dirClient, listClient, consolemap.NewEngine(log))
	sync.SetSearchPageSize(cfg.SearchPageSize)
	sync.SetListsPageSize(cfg.ListsPageSize)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPTimeout+5*time.Second)
	defer cancel()

	app := &cli{log: log, auth: authSvc, sync: sync}
	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

type cli struct {
	log  *logging.Logger
	auth *auth.Service
	sync *browse.Synchronizer
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.signup(ctx, args)
	case "resend-verification":
		return c.resendVerification(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.logout(ctx)
	case "whoami":
		return c.whoami(ctx)
	case "search":
		return c.search(ctx, args)
	case "get":
		return c.get(ctx, args)
	case "coords":
		return c.coords(ctx, args)
	case "suggest":
		return c.suggest(ctx, args)
	case "countries":
		return c.countries(ctx)
	case "lists":
		return c.lists(ctx, args)
	case "create-list":
		return c.createList(ctx, args)
	case "edit-list":
		return c.editList(ctx, args)
	case "delete-list":
		return c.deleteList(ctx, args)
	case "review":
		return c.review(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) signup(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("signup", flag.ExitOnError)
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if err := c.auth.Signup(ctx, *name, *email, *password); err != nil {
		return err
	}
	c.log.Info("account created; check your email for the verification link")
	return nil
}

func (c *cli) resendVerification(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("resend-verification", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	fs.Parse(args)

	if err := c.auth.ResendVerification(ctx, *email); err != nil {
		return err
	}
	c.log.Info("verification email sent to %s", *email)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	if err := c.auth.Login(ctx, *email, *password); err != nil {
		return err
	}
	c.log.Info("logged in as %s", c.auth.Nickname(ctx))
	return nil
}

func (c *cli) logout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.log.Info("logged out")
	return nil
}

func (c *cli) whoami(ctx context.Context) error {
	nick := c.auth.Nickname(ctx)
	if nick == "" {
		fmt.Println("not logged in")
		return nil
	}
	fmt.Println(nick)
	return nil
}

func (c *cli) search(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	fieldsArg := fs.String("fields", "destination", "comma-separated: destination,region,country")
	term := fs.String("term", "", "search term")
	pageSize := fs.Int("page-size", 0, "results per page (5, 10 or 20)")
	fs.Parse(args)

	fields, err := parseFields(*fieldsArg)
	if err != nil {
		return err
	}
	if *pageSize > 0 {
		c.sync.SetSearchPageSize(*pageSize)
	}
	view, err := c.sync.Search(ctx, fields, *term)
	if err != nil {
		return err
	}
	fmt.Printf("page %d/%d\n", view.Page, view.TotalPages)
	for _, d := range view.Items {
		fmt.Printf("%s\t%s\t%s, %s\n", d.ID, d.Name, d.Region, d.Country)
	}
	return nil
}

func (c *cli) get(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	id := fs.String("id", "", "destination id")
	fs.Parse(args)

	d, err := c.sync.LookupByID(ctx, domain.DestinationID(*id))
	if err != nil {
		return err
	}
	printDestination(d)
	return nil
}

func (c *cli) coords(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("coords", flag.ExitOnError)
	id := fs.String("id", "", "destination id")
	fs.Parse(args)

	c.sync.Map().SetVisible(true)
	return c.sync.RecenterOnCoordinates(ctx, domain.DestinationID(*id))
}

func (c *cli) suggest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("suggest", flag.ExitOnError)
	prefix := fs.String("prefix", "", "name prefix")
	fs.Parse(args)

	ds, err := c.sync.Suggest(ctx, *prefix)
	if err != nil {
		return err
	}
	for _, d := range ds {
		fmt.Printf("%s\t%s\n", d.ID, d.Name)
	}
	return nil
}

func (c *cli) countries(ctx context.Context) error {
	cs, err := c.sync.Countries(ctx)
	if err != nil {
		return err
	}
	for _, name := range cs {
		fmt.Println(name)
	}
	return nil
}

func (c *cli) lists(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("lists", flag.ExitOnError)
	page := fs.Int("page", 1, "page of the merged collection")
	fs.Parse(args)

	if err := c.sync.LoadLists(ctx, c.auth.Credential(ctx)); err != nil {
		return err
	}
	view := c.sync.ListsView()
	for view.Page < *page && view.HasNext {
		view = c.sync.NextListsPage()
	}
	fmt.Printf("page %d/%d\n", view.Page, view.TotalPages)
	for _, t := range view.Items {
		fmt.Printf("%s\t[%s]\t%s (%s, %d destinations, avg %.1f)\n",
			t.List.ID, t.Origin, t.List.Name, t.List.Visibility, len(t.List.Destinations), t.List.AverageRating)
	}
	return nil
}

func (c *cli) createList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create-list", flag.ExitOnError)
	name := fs.String("name", "", "list name")
	description := fs.String("description", "", "list description")
	visibility := fs.String("visibility", string(domain.VisibilityPrivate), "private or public")
	entries := fs.String("entries", "", "comma-separated name=id pairs")
	fs.Parse(args)

	sess := c.sync.Session()
	sess.StartDraftList()
	draft, _ := sess.Draft()
	draft.Name = *name
	draft.Description = *description
	draft.Visibility = domain.Visibility(*visibility)
	for _, pair := range splitNonEmpty(*entries) {
		entryName, id, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("malformed entry %q, want name=id", pair)
		}
		if err := sess.AddDraftEntry(domain.Destination{
			ID:   domain.DestinationID(strings.TrimSpace(id)),
			Name: strings.TrimSpace(entryName),
		}); err != nil {
			return err
		}
	}

	created, err := c.sync.CreateList(ctx, c.auth.Credential(ctx))
	if err != nil {
		return err
	}
	c.log.Info("created list %s (%s)", created.Name, created.ID)
	return nil
}

func (c *cli) editList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("edit-list", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	name := fs.String("name", "", "new name (empty keeps the current one)")
	description := fs.String("description", "", "new description (empty keeps the current one)")
	visibility := fs.String("visibility", "", "private or public (empty keeps the current one)")
	fs.Parse(args)

	cred := c.auth.Credential(ctx)
	if err := c.sync.LoadLists(ctx, cred); err != nil {
		return err
	}
	var target *domain.List
	for _, l := range c.sync.PersonalLists() {
		if l.ID == domain.ListID(*id) {
			l := l
			target = &l
			break
		}
	}
	if target == nil {
		return fmt.Errorf("list %q is not one of your lists", *id)
	}

	sess := c.sync.Session()
	sess.EditList(*target)
	draft, _ := sess.Draft()
	if *name != "" {
		draft.Name = *name
	}
	if *description != "" {
		draft.Description = *description
	}
	if *visibility != "" {
		draft.Visibility = domain.Visibility(*visibility)
	}

	updated, err := c.sync.SaveEditedList(ctx, cred)
	if err != nil {
		return err
	}
	c.log.Info("updated list %s (%s)", updated.Name, updated.ID)
	return nil
}

func (c *cli) deleteList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-list", flag.ExitOnError)
	id := fs.String("id", "", "list id")
	yes := fs.Bool("yes", false, "confirm the deletion")
	fs.Parse(args)

	if err := c.sync.DeleteList(ctx, c.auth.Credential(ctx), domain.ListID(*id), *yes); err != nil {
		return err
	}
	c.log.Info("deleted list %s", *id)
	return nil
}

func (c *cli) review(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	id := fs.String("list", "", "list id")
	rating := fs.Int("rating", 0, "rating, 1 to 5")
	comment := fs.String("comment", "", "review comment")
	fs.Parse(args)

	cred := c.auth.Credential(ctx)
	if err := c.sync.LoadLists(ctx, cred); err != nil {
		return err
	}
	if err := c.sync.OpenReviews(domain.ListID(*id)); err != nil {
		return err
	}
	c.sync.Session().SetDraftReview(session.DraftReview{Rating: *rating, Comment: *comment})
	if err := c.sync.SubmitReview(ctx, cred); err != nil {
		return err
	}
	rc, _ := c.sync.Session().Reviews()
	c.log.Info("review added; %q now has %d reviews", rc.ListName, len(rc.Reviews))
	return nil
}

func parseFields(arg string) ([]directory.SearchField, error) {
	out := make([]directory.SearchField, 0, 3)
	for _, f := range splitNonEmpty(arg) {
		switch strings.ToLower(f) {
		case "destination":
			out = append(out, directory.FieldDestination)
		case "region":
			out = append(out, directory.FieldRegion)
		case "country":
			out = append(out, directory.FieldCountry)
		default:
			return nil, fmt.Errorf("unknown field %q, want destination, region or country", f)
		}
	}
	return out, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func demoDestinations() []domain.Destination {
	return []domain.Destination{
		{ID: "1", Name: "Paris", Country: "France", Region: "Île-de-France", Category: "City", Latitude: "48.8566", Longitude: "2.3522", Currency: "Euro", Language: "French"},
		{ID: "2", Name: "Rome", Country: "Italy", Region: "Lazio", Category: "City", Latitude: "41.9028", Longitude: "12.4964", Currency: "Euro", Language: "Italian"},
		{ID: "3", Name: "Porto", Country: "Portugal", Region: "Norte", Category: "City", Latitude: "41.1579", Longitude: "-8.6291", Currency: "Euro", Language: "Portuguese"},
		{ID: "4", Name: "Santorini", Country: "Greece", Region: "South Aegean", Category: "Island", Latitude: "36.3932", Longitude: "25.4615", Currency: "Euro", Language: "Greek"},
	}
}

func splitNonEmpty(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func printDestination(d domain.Destination) {
	fmt.Printf("%s (%s)\n", d.Name, d.ID)
	fmt.Printf("  %s, %s (%s)\n", d.Region, d.Country, d.Category)
	if coords, ok := d.Coordinates(); ok {
		fmt.Printf("  coordinates: %.4f, %.4f\n", coords.Latitude, coords.Longitude)
	}
	fmt.Printf("  currency: %s, language: %s\n", d.Currency, d.Language)
	fmt.Printf("  best time to visit: %s\n", d.BestTimeToVisit)
	fmt.Printf("  cost of living: %s, safety: %s\n", d.CostOfLiving, d.Safety)
	fmt.Printf("  annual tourists: %s\n", d.AnnualTourists)
	fmt.Printf("  cultural significance: %s\n", d.CulturalSignificance)
	fmt.Printf("  famous foods: %s\n", d.FamousFoods)
	if d.Description != "" {
		fmt.Printf("  %s\n", d.Description)
	}
}
