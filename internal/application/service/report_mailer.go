package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/stayops/resortbill-api/pkg/email"
)

// ReportMailer sends the previous day's sales report by email on a cron
// schedule. The job is disabled when no recipient is configured.
type ReportMailer struct {
	reportService   *ReportService
	settingsService *SettingsService
	emailService    *email.EmailService
	log             *logrus.Logger

	recipient string
	schedule  string
	cron      *cron.Cron
}

// NewReportMailer creates a new report mailer
func NewReportMailer(
	reportService *ReportService,
	settingsService *SettingsService,
	emailService *email.EmailService,
	log *logrus.Logger,
	recipient, schedule string,
) *ReportMailer {
	return &ReportMailer{
		reportService:   reportService,
		settingsService: settingsService,
		emailService:    emailService,
		log:             log,
		recipient:       recipient,
		schedule:        schedule,
	}
}

// Start registers the cron job and starts the scheduler. Returns false when
// the job is disabled by configuration.
func (m *ReportMailer) Start() (bool, error) {
	if m.recipient == "" {
		return false, nil
	}

	m.cron = cron.New()
	_, err := m.cron.AddFunc(m.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := m.SendDailyReport(ctx, time.Now().AddDate(0, 0, -1)); err != nil {
			m.log.WithError(err).Error("daily report email failed")
		}
	})
	if err != nil {
		return false, fmt.Errorf("invalid report cron schedule %q: %w", m.schedule, err)
	}

	m.cron.Start()
	m.log.WithFields(logrus.Fields{
		"recipient": m.recipient,
		"schedule":  m.schedule,
	}).Info("daily report email scheduled")
	return true, nil
}

// Stop stops the scheduler, waiting for a running job to finish.
func (m *ReportMailer) Stop() {
	if m.cron != nil {
		<-m.cron.Stop().Done()
	}
}

// SendDailyReport builds and emails the sales report for one calendar day.
func (m *ReportMailer) SendDailyReport(ctx context.Context, day time.Time) error {
	report, err := m.reportService.DailySales(ctx, day)
	if err != nil {
		return err
	}

	resortName := "Resort"
	if settings, err := m.settingsService.GetSettings(ctx); err == nil {
		resortName = settings.ResortName
	}

	workbook, err := ExportSalesExcel(report)
	if err != nil {
		return err
	}

	date := day.Format("2006-01-02")
	data := email.ReportEmailData{
		ResortName:   resortName,
		Date:         date,
		InvoiceCount: report.Totals.InvoiceCount,
		Subtotal:     report.Totals.Subtotal.StringFixed(2),
		TaxAmount:    report.Totals.TaxAmount.StringFixed(2),
		TotalAmount:  report.Totals.TotalAmount.StringFixed(2),
	}

	return m.emailService.SendDailySalesReport(
		m.recipient,
		data,
		workbook.Bytes(),
		fmt.Sprintf("sales-report-%s.xlsx", date),
	)
}
