package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/StudyRAG/internal/api"
	"github.com/akolanti/StudyRAG/internal/domain/jobModel"
)

func ToInitJobResponse(id string, fileName string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		FileName:  fileName,
		StatusURL: fmt.Sprintf("status/%s", id),
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:         string(job.Status),
		IngestResponse: ToIngestExternal(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		SessionId: job.SessionId,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToIngestExternal(payload jobModel.JobPayload) *api.IngestExternal {
	if payload.IngestFileName == "" && payload.FragmentsAdded == 0 {
		return nil
	}

	return &api.IngestExternal{
		FileName:       payload.IngestFileName,
		FragmentsAdded: payload.FragmentsAdded,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		SessionId: "",
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
