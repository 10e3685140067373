package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"lootvalue/internal/domain"
	"lootvalue/internal/domain/entity"
	"lootvalue/pkg/errcodes"
	"lootvalue/pkg/httpx/reply"
	"lootvalue/pkg/httpx/req"
	"lootvalue/pkg/rest"
)

type appraisalService interface {
	Appraise(ctx context.Context, itemID string, policy entity.Policy) (entity.Appraisal, error)
}

type AppraisalServer struct {
	appraisalService appraisalService
	policy           entity.Policy
	display          entity.DisplaySettings
}

// NewAppraisalServer policy и display применяются, когда клиент не передал свои.
func NewAppraisalServer(
	appraisalService appraisalService,
	policy entity.Policy,
	display entity.DisplaySettings,
) AppraisalServer {
	return AppraisalServer{
		appraisalService: appraisalService,
		policy:           policy,
		display:          display,
	}
}

func (s AppraisalServer) postV1Appraisals(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.AppraisalRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	policy := s.policy
	if request.Policy != nil {
		policy = newDomainPolicy(*request.Policy)
	}

	display := s.display
	if request.Display != nil {
		display = newDomainDisplay(*request.Display)
	}

	appraisal, err := s.appraisalService.Appraise(ctx, request.ItemID, policy)
	if err != nil {
		return fmt.Errorf("appraisalService.Appraise: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAppraisal(appraisal, display))

	return nil
}

func (s AppraisalServer) getV1ItemAppraisal(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	policy := s.policy

	if raw := r.URL.Query().Get("restricted"); raw != "" {
		restricted, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.NewError(errcodes.ValidationError, errcodes.KindInvalidArgument,
				fmt.Sprintf("restricted: %q is not a boolean", raw))
		}

		policy.InRestrictedContext = restricted
	}

	appraisal, err := s.appraisalService.Appraise(ctx, chi.URLParam(r, "id"), policy)
	if err != nil {
		return fmt.Errorf("appraisalService.Appraise: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTAppraisal(appraisal, s.display))

	return nil
}
