package usecase

import (
	"context"
	"strings"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"
)

// EntityResolver hydrates stored records into their related entities.
// Lookups fail soft: a missing or unreadable relation is left nil and
// logged, never returned as an error.
type EntityResolver struct {
	users    interfaces.IUserRepository
	horses   interfaces.IHorseRepository
	owners   interfaces.IHorseOwnerRepository
	shows    interfaces.IServiceShowRepository
	requests interfaces.IServiceRequestRepository
}

func NewEntityResolver(
	users interfaces.IUserRepository,
	horses interfaces.IHorseRepository,
	owners interfaces.IHorseOwnerRepository,
	shows interfaces.IServiceShowRepository,
	requests interfaces.IServiceRequestRepository,
) *EntityResolver {
	return &EntityResolver{users: users, horses: horses, owners: owners, shows: shows, requests: requests}
}

// FetchUser reads a user without caching. The bool is false when the user
// is absent or could not be read.
func (r *EntityResolver) FetchUser(ctx context.Context, userID string) (entities.User, bool) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.User{}, false
	}
	u, err := r.users.GetByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("user_id", userID).Warn("[resolver] user lookup failed")
		return entities.User{}, false
	}
	if u.ID == "" {
		return entities.User{}, false
	}
	return u, true
}

func (r *EntityResolver) FetchServiceRequest(ctx context.Context, id string) (entities.ServiceRequest, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceRequest{}, false
	}
	req, err := r.requests.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("service_request_id", id).Warn("[resolver] service request lookup failed")
		return entities.ServiceRequest{}, false
	}
	if req.ID == "" {
		return entities.ServiceRequest{}, false
	}
	return req, true
}

func (r *EntityResolver) HydrateHorse(ctx context.Context, h entities.Horse) entities.Horse {
	return r.session().horse(ctx, h)
}

func (r *EntityResolver) HydrateServiceRequest(ctx context.Context, req entities.ServiceRequest) entities.ServiceRequest {
	return r.session().serviceRequest(ctx, req, nil)
}

func (r *EntityResolver) session() *resolveSession {
	return &resolveSession{
		r:     r,
		users: map[string]*entities.User{},
		shows: map[string]*entities.ServiceShow{},
	}
}

// resolveSession memoizes user and show lookups for one hydration call.
// A nil map value records a miss.
type resolveSession struct {
	r     *EntityResolver
	users map[string]*entities.User
	shows map[string]*entities.ServiceShow
}

func (s *resolveSession) user(ctx context.Context, id string) (entities.User, bool) {
	if id == "" {
		return entities.User{}, false
	}
	if u, seen := s.users[id]; seen {
		if u == nil {
			return entities.User{}, false
		}
		return *u, true
	}
	u, ok := s.r.FetchUser(ctx, id)
	if !ok {
		s.users[id] = nil
		return entities.User{}, false
	}
	s.users[id] = &u
	return u, true
}

func (s *resolveSession) horseManager(ctx context.Context, id string) *entities.HorseManager {
	u, ok := s.user(ctx, id)
	if !ok || u.HorseManager == nil {
		return nil
	}
	m := *u.HorseManager
	m.UserID = u.ID
	return &m
}

func (s *resolveSession) serviceProvider(ctx context.Context, id string) *entities.ServiceProvider {
	u, ok := s.user(ctx, id)
	if !ok || u.ServiceProvider == nil {
		return nil
	}
	p := *u.ServiceProvider
	p.UserID = u.ID
	return &p
}

func (s *resolveSession) show(ctx context.Context, id string) *entities.ServiceShow {
	if id == "" {
		return nil
	}
	if sh, seen := s.shows[id]; seen {
		return sh
	}
	sh, err := s.r.shows.GetByID(ctx, id)
	if err != nil || sh.ID == "" {
		if err != nil {
			logger.FromContext(ctx).WithError(err).WithField("show_id", id).Warn("[resolver] show lookup failed")
		}
		s.shows[id] = nil
		return nil
	}
	s.shows[id] = &sh
	return &sh
}

func (s *resolveSession) horse(ctx context.Context, h entities.Horse) entities.Horse {
	h.Trainer = s.horseManager(ctx, h.TrainerID)
	h.Creator = s.horseManager(ctx, h.CreatorID)
	h.Leaser = s.horseManager(ctx, h.LeaserID)
	h.Owners = nil
	if len(h.OwnerIDs) == 0 {
		return h
	}

	owners, err := s.r.owners.ListByHorseID(ctx, h.ID)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("horse_id", h.ID).Warn("[resolver] horse owners lookup failed")
		return h
	}
	for _, o := range owners {
		if u, ok := s.user(ctx, o.UserID); ok && u.HorseManager != nil {
			if o.Name == "" {
				o.Name = u.HorseManager.Name
			}
			if o.AvatarURL == "" {
				o.AvatarURL = u.HorseManager.AvatarURL
			}
		}
		h.Owners = append(h.Owners, o)
	}
	return h
}

func (s *resolveSession) fetchHorse(ctx context.Context, id string) *entities.Horse {
	if id == "" {
		return nil
	}
	h, err := s.r.horses.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).WithError(err).WithField("horse_id", id).Warn("[resolver] horse lookup failed")
		return nil
	}
	if h.ID == "" {
		return nil
	}
	h = s.horse(ctx, h)
	return &h
}

// serviceRequest hydrates req. When anchor is non-nil the request shares
// that horse and its payer instead of loading its own; provider, assigner
// and show are always resolved per request.
func (s *resolveSession) serviceRequest(ctx context.Context, req entities.ServiceRequest, anchor *horseAnchor) entities.ServiceRequest {
	if anchor != nil {
		req.Horse = anchor.horse
	} else {
		req.Horse = s.fetchHorse(ctx, req.HorseID)
	}
	req.Payer = nil
	if req.Horse != nil {
		if p, ok := DerivePayer(*req.Horse); ok {
			req.Payer = &p
		}
	}

	req.Show = s.show(ctx, req.ShowID)
	req.ServiceProvider = s.serviceProvider(ctx, req.ServiceProviderID)
	req.Assigner = s.serviceProvider(ctx, req.AssignerID)
	req.Creator = s.horseManager(ctx, req.CreatorID)
	return req
}

type horseAnchor struct {
	horse *entities.Horse
}
