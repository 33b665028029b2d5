package jobs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"vibr/internal/phrasebook"
)

// PhrasebookReloader watches the phrasebook overlay file and swaps in a new
// book when the file changes. An invalid overlay keeps the current book.
type PhrasebookReloader struct {
	holder   *phrasebook.Holder
	path     string
	interval time.Duration
	lastMod  time.Time
}

// NewPhrasebookReloader creates a new reloader. The holder is assumed to
// already contain the book loaded from path.
func NewPhrasebookReloader(holder *phrasebook.Holder, path string, interval time.Duration) *PhrasebookReloader {
	r := &PhrasebookReloader{
		holder:   holder,
		path:     path,
		interval: interval,
	}
	if info, err := os.Stat(path); err == nil {
		r.lastMod = info.ModTime()
	}
	return r
}

// Start begins the background reload loop. File events trigger a reload
// immediately; the ticker catches changes the watcher misses.
func (r *PhrasebookReloader) Start(ctx context.Context) {
	log.Printf("Phrasebook reloader started (file: %s, interval: %v)", r.path, r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var events <-chan fsnotify.Event
	var errs <-chan error
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("Phrasebook reloader: file events unavailable, polling only: %v", err)
	} else {
		defer watcher.Close()
		// Watch the directory so editors that replace the file are seen.
		if err := watcher.Add(filepath.Dir(r.path)); err != nil {
			log.Printf("Phrasebook reloader: failed to watch %s, polling only: %v", filepath.Dir(r.path), err)
		} else {
			events, errs = watcher.Events, watcher.Errors
		}
	}

	for {
		select {
		case <-ctx.Done():
			log.Println("Phrasebook reloader stopped")
			return
		case <-ticker.C:
			r.reload()
		case event, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if r.isOverlayEvent(event) {
				r.reload()
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			log.Printf("Phrasebook reloader: watcher error: %v", err)
		}
	}
}

// isOverlayEvent reports whether event changed the overlay file's content.
func (r *PhrasebookReloader) isOverlayEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != filepath.Clean(r.path) {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// reload loads the overlay if its modification time changed. It reports
// whether a new book was swapped in.
func (r *PhrasebookReloader) reload() bool {
	info, err := os.Stat(r.path)
	if err != nil {
		log.Printf("Phrasebook reloader: failed to stat %s: %v", r.path, err)
		return false
	}
	if info.ModTime().Equal(r.lastMod) {
		return false
	}

	book, err := phrasebook.LoadWithOverlay(r.path)
	if err != nil {
		log.Printf("Phrasebook reloader: keeping current phrasebook: %v", err)
		// Do not retry the same broken file every tick.
		r.lastMod = info.ModTime()
		return false
	}

	r.holder.Swap(book)
	r.lastMod = info.ModTime()
	log.Printf("Phrasebook reloader: loaded %d categories from %s", len(book.Categories()), r.path)
	return true
}
