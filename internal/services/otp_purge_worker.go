package services

import (
	"context"
	"log"
	"time"

	"workpass/internal/repository"
)

// OtpPurgeWorker deletes expired one-time codes on a fixed interval.
// It is owned by the process: started on boot, stopped on shutdown.
type OtpPurgeWorker struct {
	otpRepo  repository.OtpRepository
	interval time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

func NewOtpPurgeWorker(otpRepo repository.OtpRepository, interval time.Duration) *OtpPurgeWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OtpPurgeWorker{
		otpRepo:  otpRepo,
		interval: interval,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

func (w *OtpPurgeWorker) Start() {
	log.Printf("Starting OTP purge worker (interval %v)...", w.interval)
	go w.run()
}

func (w *OtpPurgeWorker) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("OTP purge worker stopped")
}

func (w *OtpPurgeWorker) run() {
	defer close(w.doneChan)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.purge()
		case <-w.stopChan:
			return
		}
	}
}

func (w *OtpPurgeWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	purged, err := w.otpRepo.PurgeExpired(ctx)
	if err != nil {
		log.Printf("OTP purge failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Purged %d expired OTP codes", purged)
	}
}
