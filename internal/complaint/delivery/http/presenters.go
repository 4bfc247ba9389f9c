package http

import (
	"time"

	"smartcity-complaints/internal/complaint"
	"smartcity-complaints/internal/model"
)

// --- Request DTOs ---

type submitTextReq struct {
	CitizenName string `json:"citizen_name" binding:"required,min=1,max=255"`
	Message     string `json:"message"      binding:"required,min=1,max=4000"`
}

func (r submitTextReq) toInput() complaint.TextInput {
	return complaint.TextInput{
		CitizenName: r.CitizenName,
		Message:     r.Message,
	}
}

// submitVoiceReq and submitImageReq are assembled from multipart forms
// in process_request.go; they have no binding tags.

type submitVoiceReq struct {
	CitizenName string
	Audio       []byte
}

func (r submitVoiceReq) toInput() complaint.VoiceInput {
	return complaint.VoiceInput{
		CitizenName: r.CitizenName,
		Audio:       r.Audio,
	}
}

type submitImageReq struct {
	Image []byte
}

func (r submitImageReq) toInput() complaint.ImageInput {
	return complaint.ImageInput{Image: r.Image}
}

// ---

type listReq struct {
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() complaint.ListInput {
	return complaint.ListInput{
		Category: r.Category,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

// --- Response DTOs ---

type complaintResp struct {
	ID          int64     `json:"id"`
	CitizenName string    `json:"citizen_name"`
	Message     string    `json:"message"`
	Category    string    `json:"category"`
	Reply       string    `json:"reply"`
	Action      string    `json:"action"`
	CreatedAt   time.Time `json:"created_at"`
}

func newComplaintResp(c model.Complaint) complaintResp {
	return complaintResp{
		ID:          c.ID,
		CitizenName: c.CitizenName,
		Message:     c.Message,
		Category:    c.Category,
		Reply:       c.Reply,
		Action:      c.Action,
		CreatedAt:   c.CreatedAt,
	}
}

type submitResp struct {
	Complaint complaintResp `json:"complaint"`
}

func (h *handler) newSubmitResp(out complaint.SubmitOutput) submitResp {
	return submitResp{Complaint: newComplaintResp(out.Complaint)}
}

type imageResp struct {
	Category    string  `json:"category"`
	Confidence  float64 `json:"confidence"`
	Description string  `json:"description"`
}

func (h *handler) newImageResp(out complaint.ImageOutput) imageResp {
	return imageResp{
		Category:    out.Category,
		Confidence:  out.Confidence,
		Description: out.Description,
	}
}

type listResp struct {
	Complaints []complaintResp `json:"complaints"`
	Total      int             `json:"total"`
	Limit      int             `json:"limit"`
	Offset     int             `json:"offset"`
}

func (h *handler) newListResp(out complaint.ListOutput) listResp {
	complaints := make([]complaintResp, len(out.Complaints))
	for i, c := range out.Complaints {
		complaints[i] = newComplaintResp(c)
	}
	return listResp{
		Complaints: complaints,
		Total:      out.Total,
		Limit:      out.Limit,
		Offset:     out.Offset,
	}
}

type detailResp struct {
	Complaint complaintResp `json:"complaint"`
}

func (h *handler) newDetailResp(out complaint.DetailOutput) detailResp {
	return detailResp{Complaint: newComplaintResp(out.Complaint)}
}
