package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/GFDaniel/Leave-Request-Dashboard/internal/dashboard"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/domain"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/i18n"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/query"
	"github.com/GFDaniel/Leave-Request-Dashboard/internal/remote"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	statusFlag := flag.String("status", "", "filter by status: Pending, Approved or Rejected")
	sortFlag := flag.String("sort", "dateRequested", "sort field: dateRequested or startDate")
	ascFlag := flag.Bool("asc", false, "sort ascending instead of descending")
	langFlag := flag.String("lang", "", "language code (en, es); overrides the saved choice")
	flag.Parse()

	baseURL := os.Getenv("LEAVE_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:4000"
	}

	persister, err := i18n.NewFilePersister("")
	if err != nil {
		logger.Fatal("resolve config dir failed", zap.Error(err))
	}
	translations, err := i18n.NewStore(persister, logger)
	if err != nil {
		logger.Fatal("load translations failed", zap.Error(err))
	}
	if *langFlag != "" {
		if err := translations.SetLanguage(*langFlag); err != nil {
			logger.Fatal("set language failed", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := remote.NewService(baseURL, nil, logger)
	store := dashboard.NewStore(ctx, svc, logger)

	store.SetSortOptions(sortOptions(*sortFlag, *ascFlag))
	if opts, ok := filterOptions(*statusFlag); ok {
		store.SetFilters(opts)
	}

	render(store.Snapshot(), translations)
}

func sortOptions(field string, asc bool) domain.SortOptions {
	opts := domain.DefaultSortOptions()
	if field == string(domain.SortByStartDate) {
		opts.Field = domain.SortByStartDate
	}
	if asc {
		opts.Direction = domain.SortAscending
	}
	return opts
}

func filterOptions(status string) (domain.FilterOptions, bool) {
	switch domain.LeaveStatus(status) {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected:
		s := domain.LeaveStatus(status)
		return domain.FilterOptions{Status: &s}, true
	default:
		return domain.FilterOptions{}, false
	}
}

func render(snap dashboard.Snapshot, translations *i18n.Store) {
	t := translations.Translate

	fmt.Println(t("dashboard.title", nil))
	if snap.Err != "" {
		fmt.Printf("%s: %s\n", t("common.error", nil), snap.Err)
		return
	}
	if len(snap.Requests) == 0 {
		fmt.Println(t("dashboard.noRequests", nil))
		return
	}
	if len(snap.Filtered) == 0 {
		fmt.Println(t("dashboard.noFilteredRequests", nil))
		return
	}

	fmt.Println(t("dashboard.subtitle", map[string]any{
		"count": len(snap.Filtered),
		"total": len(snap.Requests),
	}))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		t("table.employee", nil),
		t("table.leaveType", nil),
		t("table.dates", nil),
		t("table.status", nil),
		t("table.requested", nil),
	)
	for _, req := range snap.Filtered {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s (%s)\t%s\n",
			req.EmployeeName,
			req.LeaveType,
			query.FormatDateRange(req.StartDate, req.EndDate),
			req.Status,
			query.StatusSeverity(req.Status),
			req.DateRequested,
		)
	}
	w.Flush()
}
