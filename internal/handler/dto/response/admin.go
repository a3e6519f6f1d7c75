package response

import (
	"circulation/internal/usecase/commands"
)

type SweepReportResponse struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type SyncResultResponse struct {
	BorrowsTouched      int64 `json:"borrowsTouched"`
	ReservationsTouched int64 `json:"reservationsTouched"`
}

func FromReport(r *commands.Report) *SweepReportResponse {
	return &SweepReportResponse{
		Processed: r.Processed,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}

func FromSyncResult(r *commands.SyncResult) *SyncResultResponse {
	return &SyncResultResponse{
		BorrowsTouched:      r.BorrowsTouched,
		ReservationsTouched: r.ReservationsTouched,
	}
}
