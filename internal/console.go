package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"streamsched/internal/models"
	"streamsched/internal/providers"
	"streamsched/internal/services"
	"streamsched/internal/settings/interfaces"
	"streamsched/internal/structures"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// ErrNotConfirmed is returned by Reset without --yes.
var ErrNotConfirmed = errors.New("refusing to overwrite the stored schedule without --yes")

// Console backs the one-shot CLI commands. It shares the daemon's service
// and store but never listens.
type Console struct {
	conf    *structures.Config
	logger  providers.Logger
	service services.ScheduleServiceInterface
	store   interfaces.StoreInterface
}

func NewConsole(conf *structures.Config, logger providers.Logger, service services.ScheduleServiceInterface, store interfaces.StoreInterface) *Console {
	return &Console{conf: conf, logger: logger, service: service, store: store}
}

// Show loads the stored schedule and prints it as a table. An unreachable
// store is reported with a banner above the built-in schedule.
func (c *Console) Show(ctx context.Context, out io.Writer) error {
	res := c.service.Load(ctx)
	if !res.OK {
		warn := color.New(color.FgYellow, color.Bold)
		_, _ = fmt.Fprintln(out, warn.Sprint(res.Message))
		c.logger.Warnf(providers.TypeApp, "show: %v", res.Err)
	}
	_, _ = fmt.Fprintln(out, RenderSchedule(c.service.Schedule()))
	return nil
}

// Reset writes the built-in default schedule to the store.
func (c *Console) Reset(ctx context.Context, out io.Writer, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	if _, err := c.service.Reset(true); err != nil {
		return err
	}
	res := c.service.Save(ctx)
	if !res.OK {
		return res.Err
	}
	_, _ = fmt.Fprintf(out, "Stored the default schedule under %q (%d days, %d streams).\n",
		c.conf.Store.Key, c.service.Schedule().Len(), c.service.Schedule().TotalStreamCount())
	return nil
}

func (c *Console) Close() error {
	defer c.logger.Close()
	return c.store.Close()
}

// RenderSchedule lays the schedule out one stream per row.
func RenderSchedule(s models.Schedule) *uitable.Table {
	bold := color.New(color.Bold)
	featured := color.New(color.FgMagenta)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("DAY"), bold.Sprint("START"), bold.Sprint("LENGTH"), bold.Sprint("TITLE"), bold.Sprint("CATEGORY"), bold.Sprint("PLATFORMS"))
	for _, day := range s.AllDays() {
		for i, e := range day.Streams {
			code := ""
			if i == 0 {
				code = day.ShortCode
			}
			title := e.Title
			switch {
			case e.IsPlaceholder():
				title = faint.Sprint(title)
			case e.Featured:
				title = featured.Sprint("★ " + title)
			}
			tbl.AddRow(code, text(e.StartTime), text(e.Duration), title, e.Category, strings.Join(e.Platforms, ", "))
		}
	}
	return tbl
}

func text(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
