package metrikadomain

// Campos de visita pedidos à Logs API
const (
	FieldVisitID       = "ym:s:visitID"
	FieldDateTime      = "ym:s:dateTime"
	FieldGoalsID       = "ym:s:goalsID"
	FieldTrafficSource = "ym:s:lastTrafficSource"
	FieldDirectOrder   = "ym:s:lastDirectClickOrder"
	FieldUTMCampaign   = "ym:s:lastUTMCampaign"
)

var VisitLogFields = []string{
	FieldVisitID,
	FieldDateTime,
	FieldGoalsID,
	FieldTrafficSource,
	FieldDirectOrder,
	FieldUTMCampaign,
}

type LogRequestStatus string

const (
	LogStatusCreated          LogRequestStatus = "created"
	LogStatusProcessed        LogRequestStatus = "processed"
	LogStatusCanceled         LogRequestStatus = "canceled"
	LogStatusProcessingFailed LogRequestStatus = "processing_failed"
	LogStatusCleanedByUser    LogRequestStatus = "cleaned_by_user"
)

type LogPart struct {
	PartNumber int   `json:"part_number"`
	Size       int64 `json:"size"`
}

type LogRequest struct {
	RequestID int64            `json:"request_id"`
	Status    LogRequestStatus `json:"status"`
	Parts     []LogPart        `json:"parts"`
}

// Failed indica que a Logs API não vai mais processar o pedido
func (r LogRequest) Failed() bool {
	return r.Status == LogStatusCanceled || r.Status == LogStatusProcessingFailed || r.Status == LogStatusCleanedByUser
}

type LogRequestResponse struct {
	LogRequest LogRequest `json:"log_request"`
}
