package validation

import (
	"time"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

const dateLayout = "2006-01-02"

// BuildCreateTaskInput turns a bound create payload into a domain input.
// The end-after-start rule is only enforced here, on creation; updates can
// move either date independently.
func BuildCreateTaskInput(req dto.CreateTaskRequest, actorID uint64, lang string) (domain.CreateTaskInput, []apiresponse.FieldError) {
	startDate := parseDate(req.StartDate)
	endDate := parseDate(req.EndDate)

	if startDate != nil && endDate != nil && !endDate.After(*startDate) {
		return domain.CreateTaskInput{}, []apiresponse.FieldError{{
			Field:   "end_date",
			Message: apiresponse.Translate("endDateAfterStartDate", lang),
		}}
	}

	in := domain.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		CreatedBy:   actorID,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if req.Status != nil {
		in.Status = domain.TaskStatus(*req.Status)
	}
	return in, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) domain.UpdateTaskInput {
	in := domain.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  req.AssignedTo,
		StartDate:   parseDate(req.StartDate),
		EndDate:     parseDate(req.EndDate),
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		in.Status = &status
	}
	return in
}

func BuildTaskFilters(query dto.ListTasksQuery) domain.TaskFilters {
	filters := domain.TaskFilters{AssignedTo: query.AssignedTo}
	if query.Status != nil {
		status := domain.TaskStatus(*query.Status)
		filters.Status = &status
	}
	return filters
}

func BuildLogFilters(query dto.ListLogsQuery) domain.LogFilters {
	filters := domain.LogFilters{TaskID: query.TaskID, UserID: query.UserID}
	if query.Limit != nil {
		filters.Limit = *query.Limit
	}
	return filters
}

// parseDate assumes the value already passed the datetime binding rule.
func parseDate(value *string) *time.Time {
	if value == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil
	}
	return &parsed
}
