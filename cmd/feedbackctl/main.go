package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"

	"github.com/danimarcos10/feedback-platform/internal/api"
	"github.com/danimarcos10/feedback-platform/internal/config"
	"github.com/danimarcos10/feedback-platform/internal/logger"
	"github.com/danimarcos10/feedback-platform/internal/metrics"
	"github.com/danimarcos10/feedback-platform/internal/model"
	"github.com/danimarcos10/feedback-platform/internal/notify"
	"github.com/danimarcos10/feedback-platform/internal/router"
	"github.com/danimarcos10/feedback-platform/internal/session"
	filekv "github.com/danimarcos10/feedback-platform/internal/storage/file"
	rediskv "github.com/danimarcos10/feedback-platform/internal/storage/redis"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

type app struct {
	store      *session.Store
	navigator  *router.Navigator
	toasts     *notify.Queue
	feedback   *api.Feedback
	admin      *api.Admin
	categories *api.Categories
	tags       *api.Tags
	analytics  *api.Analytics
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	kv, err := openKV(cfg)
	if err != nil {
		logger.Fatal("failed to open state store", "error", err)
	}

	collector := metrics.NewCollector(prometheus.NewRegistry())

	pipeline, err := api.New(cfg.API.BaseURL, logger,
		api.WithMetrics(collector),
		api.WithRateLimit(cfg.API.RateLimitRPS, cfg.API.RateLimitBurst),
	)
	if err != nil {
		logger.Fatal("failed to create request pipeline", "error", err)
	}

	authAPI := api.NewAuth(pipeline)
	store := session.NewStore(authAPI, kv, logger)
	pipeline.BindTokenSource(store)

	navigator := router.NewNavigator(router.DefaultTable(), store, logger)
	pipeline.Subscribe(store)
	pipeline.Subscribe(navigator)

	toasts := notify.NewQueue()
	defer toasts.Close()

	if err := store.Restore(ctx); err != nil {
		logger.Error("failed to restore session", "error", err)
	}

	a := &app{
		store:      store,
		navigator:  navigator,
		toasts:     toasts,
		feedback:   api.NewFeedback(pipeline),
		admin:      api.NewAdmin(pipeline),
		categories: api.NewCategories(pipeline),
		tags:       api.NewTags(pipeline),
		analytics:  api.NewAnalytics(pipeline),
	}

	if err := a.run(ctx, os.Args[1:]); err != nil {
		a.toasts.Error(err.Error())
		printToasts(a.toasts)
		os.Exit(1)
	}
	printToasts(a.toasts)
}

func openKV(cfg *config.Config) (model.KV, error) {
	if cfg.Redis.Addr != "" {
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return rediskv.New(client, cfg.Redis.KeyPrefix), nil
	}
	return filekv.New(cfg.State.File)
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: feedbackctl <login|register|logout|whoami|feedback|categories|tags|analytics|version> [args]")
	}

	switch args[0] {
	case "version":
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", buildVersion, buildDate, buildCommit)
		return nil
	case "login":
		if len(args) != 3 {
			return fmt.Errorf("usage: feedbackctl login <email> <password>")
		}
		profile, err := a.store.Login(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		landed, err := a.navigator.Navigate(router.RouteRoot)
		if err != nil {
			return err
		}
		a.toasts.Success(fmt.Sprintf("Logged in as %s (%s), landing on %s", profile.Email, profile.Role, landed))
		return nil
	case "register":
		if len(args) != 3 {
			return fmt.Errorf("usage: feedbackctl register <email> <password>")
		}
		profile, err := a.store.Register(ctx, args[1], args[2])
		if err != nil {
			return err
		}
		a.toasts.Success(fmt.Sprintf("Registered and logged in as %s", profile.Email))
		return nil
	case "logout":
		if err := a.store.Logout(ctx); err != nil {
			return err
		}
		a.toasts.Info("Logged out")
		return nil
	case "whoami":
		profile, err := a.store.FetchUser(ctx)
		if err != nil {
			return err
		}
		if profile == nil {
			return model.ErrNotAuthenticated
		}
		return printJSON(profile)
	case "feedback":
		return a.runFeedback(ctx, args[1:])
	case "categories":
		categories, err := a.categories.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(categories)
	case "tags":
		tags, err := a.tags.List(ctx)
		if err != nil {
			return err
		}
		return printJSON(tags)
	case "analytics":
		if _, err := a.navigator.Navigate(router.RouteAnalytics); err != nil {
			return err
		}
		stats, err := a.analytics.Overview(ctx)
		if err != nil {
			return err
		}
		return printJSON(stats)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *app) runFeedback(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: feedbackctl feedback <list|all|submit|get|delete> [args]")
	}

	switch args[0] {
	case "list":
		list, err := a.feedback.Mine(ctx, api.ListFilter{})
		if err != nil {
			return err
		}
		return printJSON(list)
	case "all":
		if _, err := a.navigator.Navigate(router.RouteAdmin); err != nil {
			return err
		}
		list, err := a.admin.List(ctx, api.ListFilter{})
		if err != nil {
			return err
		}
		return printJSON(list)
	case "submit":
		if len(args) != 3 {
			return fmt.Errorf("usage: feedbackctl feedback submit <title> <content>")
		}
		created, err := a.feedback.Create(ctx, api.FeedbackCreate{Title: args[1], Content: args[2], TagIDs: []int{}})
		if err != nil {
			return err
		}
		a.toasts.Success(fmt.Sprintf("Feedback #%d submitted", created.ID))
		return printJSON(created)
	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: feedbackctl feedback get <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid feedback id %q", args[1])
		}
		detail, err := a.feedback.Get(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(detail)
	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: feedbackctl feedback delete <id>")
		}
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid feedback id %q", args[1])
		}
		if err := a.feedback.Delete(ctx, id); err != nil {
			return err
		}
		a.toasts.Info(fmt.Sprintf("Feedback #%d deleted", id))
		return nil
	default:
		return fmt.Errorf("unknown feedback command %q", args[0])
	}
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func printToasts(q *notify.Queue) {
	for _, toast := range q.Toasts() {
		fmt.Printf("[%s] %s\n", toast.Kind, toast.Message)
	}
}
