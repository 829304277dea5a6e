package http

import (
	"ciblsport-api/internal/model"
	"ciblsport-api/internal/notification"
	"ciblsport-api/pkg/paginator"
)

type listNotificationQuery struct {
	Type       string `form:"type"`
	UnreadOnly bool   `form:"unreadOnly"`
	paginator.PaginateQuery
}

func (q listNotificationQuery) toInput() notification.ListInput {
	return notification.ListInput{
		Filter: notification.Filter{
			Type:       q.Type,
			UnreadOnly: q.UnreadOnly,
		},
		PaginateQuery: q.PaginateQuery,
	}
}

type listNotificationResp struct {
	Notifications []model.Notification        `json:"notifications"`
	UnreadCount   int                         `json:"unreadCount"`
	Meta          paginator.PaginatorResponse `json:"meta"`
}

func newListNotificationResp(o notification.ListOutput) listNotificationResp {
	return listNotificationResp{
		Notifications: o.Notifications,
		UnreadCount:   o.UnreadCount,
		Meta:          o.Paginator.ToResponse(),
	}
}

// preferencesReq is a partial update, absent fields keep their value.
type preferencesReq struct {
	Results  *bool `json:"results"`
	Security *bool `json:"security"`
	Events   *bool `json:"events"`
	Personal *bool `json:"personal"`
	System   *bool `json:"system"`
	Sound    *bool `json:"sound"`
	Desktop  *bool `json:"desktop"`
}

func (req preferencesReq) toInput() notification.UpdatePreferencesInput {
	return notification.UpdatePreferencesInput{
		Results:  req.Results,
		Security: req.Security,
		Events:   req.Events,
		Personal: req.Personal,
		System:   req.System,
		Sound:    req.Sound,
		Desktop:  req.Desktop,
	}
}
