package workers

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/camden-git/filecheckbackend/database"
	"github.com/camden-git/filecheckbackend/models"
	"github.com/camden-git/filecheckbackend/realtime"
)

const searchEventRetention = 30 * 24 * time.Hour

// SearchTracker collects person-page lookups on a buffered queue and flushes
// them to the database in batches, so tracking never blocks a page request.
// a full queue drops events rather than applying backpressure.
type SearchTracker struct {
	JobQueue      chan models.SearchEvent
	DB            *gorm.DB
	Hub           *realtime.Hub
	FlushInterval time.Duration
	BatchSize     int
	Wg            sync.WaitGroup
	StopChan      chan struct{}
}

func NewSearchTracker(db *gorm.DB, hub *realtime.Hub, queueSize int, flushInterval time.Duration) *SearchTracker {
	if queueSize <= 0 {
		queueSize = 1000
	}
	if flushInterval <= 0 {
		flushInterval = 30 * time.Second
	}

	st := &SearchTracker{
		JobQueue:      make(chan models.SearchEvent, queueSize),
		DB:            db,
		Hub:           hub,
		FlushInterval: flushInterval,
		BatchSize:     100,
		StopChan:      make(chan struct{}),
	}

	st.Wg.Add(1)
	go st.run()
	log.Printf("started search tracker (queue size %d, flush every %s)", queueSize, flushInterval)

	return st
}

// Track enqueues one lookup. returns false when the queue is full and the
// event was dropped.
func (st *SearchTracker) Track(slug, displayName string, found bool) bool {
	event := models.SearchEvent{
		Slug:        slug,
		DisplayName: displayName,
		Found:       found,
		SearchedAt:  time.Now().Unix(),
	}

	select {
	case st.JobQueue <- event:
		if st.Hub != nil {
			st.Hub.BroadcastSearch(slug, displayName, found)
		}
		return true
	default:
		log.Printf("search tracker queue full, dropping event for %s", slug)
		return false
	}
}

func (st *SearchTracker) run() {
	defer st.Wg.Done()

	ticker := time.NewTicker(st.FlushInterval)
	defer ticker.Stop()

	pruneTicker := time.NewTicker(6 * time.Hour)
	defer pruneTicker.Stop()

	batch := make([]models.SearchEvent, 0, st.BatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := database.InsertSearchEvents(st.DB, batch); err != nil {
			log.Printf("search tracker: flush of %d events failed: %v", len(batch), err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case event := <-st.JobQueue:
			batch = append(batch, event)
			if len(batch) >= st.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-pruneTicker.C:
			if pruned, err := database.PruneSearchEvents(st.DB, searchEventRetention); err != nil {
				log.Printf("search tracker: prune failed: %v", err)
			} else if pruned > 0 {
				log.Printf("search tracker: pruned %d old events", pruned)
			}
		case <-st.StopChan:
			// drain whatever is queued before the final flush
			for {
				select {
				case event := <-st.JobQueue:
					batch = append(batch, event)
				default:
					flush()
					return
				}
			}
		}
	}
}

// Stop flushes pending events and stops the worker.
func (st *SearchTracker) Stop() {
	close(st.StopChan)
	st.Wg.Wait()
	log.Println("search tracker stopped")
}
