package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nikmy/meowcal/internal/repo"
	"github.com/nikmy/meowcal/pkg/calendar"
	"github.com/nikmy/meowcal/pkg/errors"
	"github.com/nikmy/meowcal/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, selections selectionsRepo, now func() time.Time) Server {
	return newServer(cfg, log, selections, now)
}

func newServer(cfg Config, log logger.Logger, selections selectionsRepo, now func() time.Time) *server {
	serveLog := log.With("api_http_server")

	if now == nil {
		now = time.Now
	}

	fiberCfg := fiber.Config{
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		RequestMethods:        []string{fiber.MethodGet, fiber.MethodHead},
	}

	if len(cfg.Proxy.Trusted) > 0 {
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.ProxyHeader = cfg.Proxy.Header
		fiberCfg.TrustedProxies = cfg.Proxy.Trusted
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return sendError(c, fe.Code, fe.Message)
		}

		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(http.StatusInternalServerError).Send(nil)
	}

	s := &server{
		selections: selections,
		http:       fiber.New(fiberCfg),
		addr:       cfg.HTTP.Addr,
		locale:     cfg.DefaultLocale,
		now:        now,
		log:        serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	selections selectionsRepo
	http       *fiber.App
	addr       string
	locale     string
	now        func() time.Time
	log        logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return errors.WrapFail(err, "listen")
	case <-ctx.Done():
		return nil
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	err := s.http.ShutdownWithContext(ctx)
	return errors.WrapFail(err, "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Get("/healthz", s.handleHealth)
	s.http.Get("/grid", s.handleGrid)
	s.http.Get("/selections/:user", s.handleSelections)
}

func (s *server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(map[string]string{"status": "OK"})
}

// handleGrid renders one month. Query: from, to (years), year, month
// (zero-based), locale. Without from/to the interval is the current year.
func (s *server) handleGrid(c *fiber.Ctx) error {
	var years []int
	for _, key := range [...]string{"from", "to"} {
		y, ok, err := queryInt(c, key)
		if err != nil {
			s.log.Debug(err)
			return sendError(c, http.StatusBadRequest, err.Error())
		}
		if !ok {
			continue
		}
		if y < calendar.MinYear || y > calendar.MaxYear {
			return sendError(c, http.StatusBadRequest,
				fmt.Sprintf("%q must be in [%d, %d]", key, calendar.MinYear, calendar.MaxYear))
		}
		years = append(years, y)
	}

	locale := c.Query("locale")
	if locale == "" {
		locale = c.Get(fiber.HeaderAcceptLanguage, s.locale)
	}

	cal := calendar.New(calendar.Options{
		Years:  years,
		Locale: locale,
		Now:    s.now(),
	})

	year, ok, err := queryInt(c, "year")
	if err != nil {
		return sendError(c, http.StatusBadRequest, err.Error())
	}
	if ok {
		cal.ChangeYear(year)
	}

	month, ok, err := queryInt(c, "month")
	if err != nil {
		return sendError(c, http.StatusBadRequest, err.Error())
	}
	if ok {
		cal.ChangeMonth(month)
	}

	return c.JSON(newGridView(cal))
}

func (s *server) handleSelections(c *fiber.Ctx) error {
	user, err := strconv.ParseInt(c.Params("user"), 10, 64)
	if err != nil {
		return sendError(c, http.StatusBadRequest, "user must be a telegram id")
	}

	filters := make([]repo.Filter, 0, 2)

	limit, ok, err := queryInt(c, "limit")
	if err != nil {
		return sendError(c, http.StatusBadRequest, err.Error())
	}
	if ok {
		filters = append(filters, repo.Limit(limit))
	}

	year, ok, err := queryInt(c, "year")
	if err != nil {
		return sendError(c, http.StatusBadRequest, err.Error())
	}
	if ok {
		filters = append(filters, repo.InYear(year))
	}

	selected, err := s.selections.List(c.Context(), user, filters...)
	if err != nil {
		return errors.WrapFail(err, "list selections")
	}

	return c.JSON(newSelectionViews(selected))
}

func sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(map[string]string{"status": "ERROR", "message": msg})
}

func queryInt(c *fiber.Ctx, key string) (int, bool, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, errors.Errorf("got malformed %q: %s", key, raw)
	}
	return v, true, nil
}
