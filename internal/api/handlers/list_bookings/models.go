package list_bookings

import (
	"net/url"
	"strings"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/domain"
	"github.com/suraSGML/meskeremhotelproject-sub000/internal/service/bookings/models"
)

// ToServiceRequest собирает фильтр из query параметров status и contactEmail
func ToServiceRequest(rt domain.ResourceType, query url.Values) *models.ListRequest {
	req := &models.ListRequest{ResourceType: rt}

	if status := strings.TrimSpace(query.Get("status")); status != "" {
		req.Status = &status
	}
	if email := strings.TrimSpace(query.Get("contactEmail")); email != "" {
		req.ContactEmail = &email
	}

	return req
}
