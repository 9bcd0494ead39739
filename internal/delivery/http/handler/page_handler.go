package handler

import (
	"errors"
	"net/http"
	"net/url"

	"doctor-directory/internal/delivery/http/view"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/service"
	"doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus"
	"github.com/starfederation/datastar-go/datastar"
)

// PageHandler serves the directory page and the Datastar endpoints behind
// its controls. Each interaction rebuilds the Query-State Store from the
// filters signal, applies one update and, when the state changed, patches
// the derived views and the browser URL.
type PageHandler struct {
	listingUsecase usecase.DoctorListingUsecase
	log            *logrus.Logger
}

func NewPageHandler(listingUsecase usecase.DoctorListingUsecase, log *logrus.Logger) *PageHandler {
	return &PageHandler{
		listingUsecase: listingUsecase,
		log:            log,
	}
}

// Index renders the full page for the state in the request URL.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	store := service.NewQueryStateStore(r.URL.Query())

	page, err := h.buildPage(r, store, false)
	if err != nil {
		http.Error(w, "Failed to list doctors", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.RenderPage(w, page); err != nil {
		h.log.Errorf("Failed to render page: %+v", err)
	}
}

// Search applies the search box text to the name filter and refreshes the
// suggestions.
func (h *PageHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, interaction{suggest: true}, func(store *service.QueryStateStore, signals *view.Signals) error {
		return store.Update(entity.QueryKeyName, signals.Search)
	})
}

// Select applies a chosen suggestion: the name filter becomes its full name
// and the suggestion list closes.
func (h *PageHandler) Select(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.interact(w, r, interaction{syncSearch: true}, func(store *service.QueryStateStore, signals *view.Signals) error {
		return store.Update(entity.QueryKeyName, name)
	})
}

// Update sets or clears a scalar key such as moc or sort.
func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	value := r.URL.Query().Get("value")
	if entity.IsListKey(key) {
		http.Error(w, "Invalid scalar key", http.StatusBadRequest)
		return
	}
	h.interact(w, r, interaction{}, func(store *service.QueryStateStore, signals *view.Signals) error {
		return store.Update(key, value)
	})
}

// Toggle adds or removes one member of a list key such as specialty.
func (h *PageHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	value := r.URL.Query().Get("value")
	if !entity.IsListKey(key) {
		http.Error(w, "Invalid list key", http.StatusBadRequest)
		return
	}
	h.interact(w, r, interaction{}, func(store *service.QueryStateStore, signals *view.Signals) error {
		return store.Toggle(key, value)
	})
}

// Refresh re-patches the result list for the current filters. The page polls
// it while the start-up fetch is still pending.
func (h *PageHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	signals := &view.Signals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store, err := service.ParseQueryStateStore(signals.Filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := h.buildPage(r, store, false)
	if err != nil {
		http.Error(w, "Failed to list doctors", http.StatusInternalServerError)
		return
	}

	fragment, err := view.Fragment("results", page)
	if err != nil {
		h.log.Errorf("Failed to render fragment: %+v", err)
		http.Error(w, "Failed to render results", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElements(fragment); err != nil {
		h.log.Debugf("Client went away while patching results: %+v", err)
	}
}

type interaction struct {
	// suggest keeps the suggestion list open for the current name.
	suggest bool
	// syncSearch writes the resulting name back into the search box.
	syncSearch bool
}

func (h *PageHandler) interact(w http.ResponseWriter, r *http.Request, in interaction, apply func(*service.QueryStateStore, *view.Signals) error) {
	signals := &view.Signals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	store, err := service.ParseQueryStateStore(signals.Filters)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var page *view.Page
	var recomputeErr error
	store.OnChange(func(entity.QueryState) {
		page, recomputeErr = h.buildPage(r, store, in.suggest)
	})

	if err := apply(store, signals); err != nil {
		if errors.Is(err, service.ErrUnknownQueryKey) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "Failed to update filters", http.StatusInternalServerError)
		return
	}

	// A chosen suggestion always closes the list, even when the name was
	// already active.
	if page == nil && recomputeErr == nil && in.syncSearch {
		page, recomputeErr = h.buildPage(r, store, false)
	}

	sse := datastar.NewSSE(w, r)

	if page == nil && recomputeErr == nil {
		return
	}
	if recomputeErr != nil {
		h.log.Warnf("Failed to recompute views: %+v", recomputeErr)
		return
	}

	for _, name := range []string{"results", "suggestions", "filters"} {
		fragment, err := view.Fragment(name, page)
		if err != nil {
			h.log.Errorf("Failed to render fragment: %+v", err)
			return
		}
		if err := sse.PatchElements(fragment); err != nil {
			h.log.Debugf("Client went away while patching %s: %+v", name, err)
			return
		}
	}

	patch := map[string]string{"filters": page.Signals.Filters}
	if in.syncSearch {
		patch["search"] = page.Signals.Search
	}
	if err := sse.MarshalAndPatchSignals(patch); err != nil {
		h.log.Debugf("Client went away while patching signals: %+v", err)
		return
	}

	if err := sse.ReplaceURL(url.URL{Path: "/", RawQuery: store.Encode()}); err != nil {
		h.log.Debugf("Client went away while replacing URL: %+v", err)
	}
}

// buildPage recomputes the filtered list and, when asked, the suggestions
// for the active name query.
func (h *PageHandler) buildPage(r *http.Request, store *service.QueryStateStore, suggest bool) (*view.Page, error) {
	listing, err := h.listingUsecase.ListDoctors(r.Context(), store)
	if err != nil {
		return nil, err
	}

	state := store.State()
	page := view.NewPage(state, store.Encode(), listing, nil)
	if !suggest {
		return page, nil
	}

	suggestions, err := h.listingUsecase.SuggestDoctors(r.Context(), state.Name)
	if err != nil {
		return nil, err
	}
	page.Suggestions = suggestions.Suggestions
	return page, nil
}
