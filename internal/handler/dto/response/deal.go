package response

import (
	"time"

	"group-deal-engine/internal/usecase/commands"
	"group-deal-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type DealResponse struct {
	ID                  string `json:"id"`
	ProductID           string `json:"product_id"`
	ProductName         string `json:"product_name"`
	Name                string `json:"name"`
	MinParticipants     int    `json:"min_participants"`
	CurrentParticipants int    `json:"current_participants"`
	Remaining           int    `json:"remaining"`
	Progress            int    `json:"progress"`
	Deadline            *int64 `json:"deadline,omitempty"`
	IsActive            bool   `json:"is_active"`
	IsCompleted         bool   `json:"is_completed"`
	IsExpired           bool   `json:"is_expired"`
	Status              string `json:"status"`
	CompletedAt         *int64 `json:"completed_at,omitempty"`
	CreatedAt           int64  `json:"created_at"`
}

type UserDealResponse struct {
	DealResponse
	JoinedAt int64 `json:"joined_at"`
}

type DealListResponse struct {
	Deals []*DealResponse `json:"deals"`
}

type UserDealListResponse struct {
	Deals []*UserDealResponse `json:"deals"`
}

// ActiveDealResponse wraps a nullable deal so "no active deal" is a 200 with deal=null.
type ActiveDealResponse struct {
	Deal *DealResponse `json:"deal"`
}

type SideEffectWarning struct {
	Effect  string `json:"effect"`
	Message string `json:"message"`
}

type JoinResponse struct {
	DealID              string              `json:"deal_id"`
	Joined              bool                `json:"joined"`
	AlreadyMember       bool                `json:"already_member"`
	CurrentParticipants int                 `json:"current_participants"`
	MinParticipants     int                 `json:"min_participants"`
	Progress            int                 `json:"progress"`
	Completed           bool                `json:"completed"`
	CompletionClaimed   bool                `json:"completion_claimed"`
	Warnings            []SideEffectWarning `json:"warnings,omitempty"`
}

type LeaveResponse struct {
	DealID              string              `json:"deal_id"`
	CurrentParticipants int                 `json:"current_participants"`
	MinParticipants     int                 `json:"min_participants"`
	Progress            int                 `json:"progress"`
	Warnings            []SideEffectWarning `json:"warnings,omitempty"`
}

type SweepResponse struct {
	Candidates int `json:"candidates"`
	Claimed    int `json:"claimed"`
	Failed     int `json:"failed"`
}

var copyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func FromDealView(v *queries.DealView) *DealResponse {
	return &DealResponse{
		ID:                  v.ID.String(),
		ProductID:           v.ProductID.String(),
		ProductName:         v.ProductName,
		Name:                v.Name,
		MinParticipants:     v.MinParticipants,
		CurrentParticipants: v.CurrentParticipants,
		Remaining:           v.Remaining,
		Progress:            v.Progress,
		Deadline:            unixPtr(v.Deadline),
		IsActive:            v.IsActive,
		IsCompleted:         v.IsCompleted,
		IsExpired:           v.IsExpired,
		Status:              v.Status,
		CompletedAt:         unixPtr(v.CompletedAt),
		CreatedAt:           v.CreatedAt.Unix(),
	}
}

func FromDealViews(views []*queries.DealView) *DealListResponse {
	res := &DealListResponse{Deals: make([]*DealResponse, len(views))}
	for i, v := range views {
		res.Deals[i] = FromDealView(v)
	}
	return res
}

func FromUserDealViews(views []*queries.UserDealView) *UserDealListResponse {
	res := &UserDealListResponse{Deals: make([]*UserDealResponse, len(views))}
	for i, v := range views {
		res.Deals[i] = &UserDealResponse{
			DealResponse: *FromDealView(&v.DealView),
			JoinedAt:     v.JoinedAt.Unix(),
		}
	}
	return res
}

func FromJoinResult(r *commands.JoinResult) (*JoinResponse, error) {
	res := &JoinResponse{}
	if err := copier.CopyWithOption(res, r, copyOption); err != nil {
		return nil, err
	}
	res.Warnings = toWarnings(r.SideEffectErrors)
	return res, nil
}

func FromLeaveResult(r *commands.LeaveResult) (*LeaveResponse, error) {
	res := &LeaveResponse{}
	if err := copier.CopyWithOption(res, r, copyOption); err != nil {
		return nil, err
	}
	res.Warnings = toWarnings(r.SideEffectErrors)
	return res, nil
}

func FromSweepReport(r commands.SweepReport) *SweepResponse {
	res := &SweepResponse{}
	_ = copier.Copy(res, &r)
	return res
}

func toWarnings(errs []commands.SideEffectError) []SideEffectWarning {
	if len(errs) == 0 {
		return nil
	}
	out := make([]SideEffectWarning, len(errs))
	for i, e := range errs {
		out[i] = SideEffectWarning{Effect: e.Effect, Message: e.Err.Error()}
	}
	return out
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}
