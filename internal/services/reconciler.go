package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/Jsplashe/fridge-app-v2/internal/models"
)

// MatchStatus tracks the reconciliation outcome for a meal-plan entry.
type MatchStatus string

const (
	MatchPending MatchStatus = "pending"
	MatchFound   MatchStatus = "matched"
	MatchNone    MatchStatus = "none"
)

// maxTrackedEntries bounds the status map. Oldest entries are evicted first
// once the cap is reached.
const maxTrackedEntries = 1024

// RecipeAttacher persists a matched recipe onto a meal-plan entry.
// *database.DB satisfies it.
type RecipeAttacher interface {
	AttachRecipe(ctx context.Context, id string, recipe *models.Recipe) (*models.MealPlanEntry, error)
}

// Reconciler matches AI-generated meal names against real recipes and
// decorates the stored entries with the best hit. Matching is best effort:
// an upstream failure leaves the entry as a plain AI meal and is never
// retried for the same entry.
type Reconciler struct {
	searcher RecipeSearcher
	attacher RecipeAttacher
	images   *ImageCache

	mu     sync.Mutex
	status map[string]MatchStatus
	order  []string
}

// NewReconciler wires the reconciler. images may be nil when no object
// store is configured.
func NewReconciler(searcher RecipeSearcher, attacher RecipeAttacher, images *ImageCache) *Reconciler {
	return &Reconciler{
		searcher: searcher,
		attacher: attacher,
		images:   images,
		status:   make(map[string]MatchStatus),
	}
}

// Reconcile looks up a real recipe for the entry's meal name and attaches
// the first hit. Each entry id is processed at most once; repeated calls
// are no-ops. Search and attach failures are reported to the caller but
// leave the entry usable.
func (r *Reconciler) Reconcile(ctx context.Context, entry *models.MealPlanEntry) error {
	if entry == nil || entry.ID == "" {
		return nil
	}
	if !r.begin(entry.ID) {
		return nil
	}

	recipes, err := r.searcher.SearchRecipeByName(ctx, searchableName(entry.MealName), 1)
	if err != nil {
		r.finish(entry.ID, MatchNone)
		if errors.Is(err, ErrRecipeKeyMissing) {
			return nil
		}
		return err
	}
	if len(recipes) == 0 {
		r.finish(entry.ID, MatchNone)
		return nil
	}

	recipe := recipes[0]
	if r.images != nil && recipe.Image != "" {
		if cached, err := r.images.CacheImageFromURL(ctx, recipe.ID, recipe.Image); err != nil {
			log.Printf("caching recipe image for %q failed: %v", recipe.Title, err)
		} else {
			recipe.Image = cached
		}
	}

	updated, err := r.attacher.AttachRecipe(ctx, entry.ID, &recipe)
	if err != nil {
		r.finish(entry.ID, MatchNone)
		return err
	}

	r.finish(entry.ID, MatchFound)
	*entry = *updated
	return nil
}

// Status reports the recorded outcome for an entry id. Ids never seen, or
// already evicted, report MatchNone with ok false.
func (r *Reconciler) Status(id string) (MatchStatus, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.status[id]
	if !ok {
		return MatchNone, false
	}
	return st, true
}

// begin claims an entry id, evicting the oldest tracked id when full.
// Returns false when the id was already claimed.
func (r *Reconciler) begin(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.status[id]; seen {
		return false
	}
	if len(r.order) >= maxTrackedEntries {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.status, oldest)
	}
	r.status[id] = MatchPending
	r.order = append(r.order, id)
	return true
}

func (r *Reconciler) finish(id string, st MatchStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.status[id]; ok {
		r.status[id] = st
	}
}

// searchableName strips the slot suffix the planner appends, so
// "Veggie Omelette (Breakfast)" searches as "Veggie Omelette".
func searchableName(mealName string) string {
	for _, slot := range mealSlots {
		mealName = strings.TrimSuffix(mealName, " ("+slot+")")
	}
	return strings.TrimSpace(mealName)
}
