package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"nivaran/internal/auth"
	"nivaran/internal/chat"
	"nivaran/internal/complaint"
	"nivaran/internal/config"
	"nivaran/internal/health"
	"nivaran/internal/locale"
	"nivaran/internal/report"
	"nivaran/internal/server"
	"nivaran/internal/telegram"
	"nivaran/internal/translate"
	"nivaran/internal/view"
)

func main() {
	log.Println("🚀 Starting Nivaran grievance portal...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}
	log.Println("✓ Configuration loaded")

	log.Println("📋 Opening complaint store...")
	store, err := complaint.OpenStore(cfg.DBPath)
	if err != nil {
		log.Fatal("❌ Failed to open database:", err)
	}
	defer store.Close()
	log.Println("✓ Complaint store ready at", cfg.DBPath)

	log.Println("🌐 Loading locale dictionary...")
	dict, err := locale.Load()
	if err != nil {
		log.Fatal("❌ Failed to load locales:", err)
	}
	log.Printf("✓ Locales available: %v", dict.Tags())

	log.Println("🔧 Initializing translator...")
	translator, err := translate.NewFromEnv(context.Background(), cfg.TranslateAPIKey)
	if err != nil {
		log.Println("⚠️  Translation backend unavailable, using offline fallback:", err)
		translator = translate.Mock{}
	}
	if _, ok := translator.(translate.Mock); ok {
		log.Println("✓ Using offline translation fallback")
	} else {
		log.Println("✓ Cloud translation enabled")
	}

	log.Println("🔧 Initializing Telegram...")
	tg := telegram.New(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.DebugMode)
	if tg == nil {
		log.Println("⚠️  Telegram not configured, official alerts disabled")
	} else {
		log.Println("✓ Telegram notifications enabled")
	}

	projector := view.NewProjector(dict, translator)
	authSvc := auth.NewService(store)
	responder := chat.NewResponder(store)
	monitor := health.NewMonitor()

	log.Println("⏰ Scheduling daily admin report:", cfg.ReportSchedule)
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.ReportSchedule, func() {
		sendDailyReport(store, tg, cfg.ReportLimit)
	})
	if err != nil {
		log.Fatal("❌ Invalid report schedule:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := server.New(store, authSvc, projector, responder, dict, tg, monitor)

	log.Println("✅ Portal ready!")
	log.Println("═══════════════════════════════════════════════════════════")
	log.Println("🌐 Listening on port", cfg.Port)
	if err := srv.Run(cfg.Port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

// sendDailyReport posts the admin digest and a rendered table of recent
// complaints to the officials' Telegram channel.
func sendDailyReport(store *complaint.Store, tg *telegram.Client, limit int) {
	log.Println("\n📬 Generating daily report...")
	log.Println("⏰ Time:", time.Now().Format("2006-01-02 15:04:05"))

	stats, err := store.Stats()
	if err != nil {
		log.Println("⚠️  Failed to compute report stats:", err)
		return
	}
	bySector, err := store.CountBy("category")
	if err != nil {
		log.Println("⚠️  Failed to compute sector breakdown:", err)
		return
	}
	byStatus, err := store.CountBy("status")
	if err != nil {
		log.Println("⚠️  Failed to compute status breakdown:", err)
		return
	}
	byPriority, err := store.CountBy("priority")
	if err != nil {
		log.Println("⚠️  Failed to compute priority breakdown:", err)
		return
	}

	digest := report.Text(stats, bySector, byStatus, byPriority)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := tg.SendMessage(ctx, digest); err != nil {
		log.Println("⚠️  Failed to send report digest:", err)
		return
	}

	recent, err := store.Recent(limit)
	if err != nil {
		log.Println("⚠️  Failed to load recent complaints for report:", err)
		return
	}
	if len(recent) == 0 {
		log.Println("✓ Report sent (no recent complaints to render)")
		return
	}

	png, err := report.RenderTable(recent)
	if err != nil {
		log.Println("⚠️  Failed to render report table:", err)
		return
	}
	if err := tg.SendPhoto(ctx, "📊 Recent complaints", png); err != nil {
		log.Println("⚠️  Failed to send report table:", err)
		return
	}
	log.Println("✅ Daily report sent!")
}
