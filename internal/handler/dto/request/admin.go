package request

import (
	"time"
)

type SweepOverdueRequest struct {
	AsOf *time.Time `json:"as_of,omitempty"`
}

type UpdateItemMetadataRequest struct {
	Title  string `json:"title" binding:"required,max=500"`
	Author string `json:"author" binding:"required,max=200"`
}
