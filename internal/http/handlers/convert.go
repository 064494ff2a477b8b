package handlers

import (
	"delivery-dispatch/internal/domain"
	"delivery-dispatch/internal/service/lifecycle"
)

func assignmentToResponse(a domain.Assignment) assignmentResponse {
	return assignmentResponse{
		ID:          a.ID,
		DeliveryID:  a.DeliveryID,
		CourierID:   a.CourierID,
		State:       string(a.State),
		Active:      a.Active,
		AcceptedAt:  a.AcceptedAt,
		PickedAt:    a.PickedAt,
		CompletedAt: a.CompletedAt,
	}
}

func deliveryToResponse(d domain.Delivery) deliveryResponse {
	return deliveryResponse{
		ID:               d.ID,
		SenderID:         d.SenderID,
		ReceiverID:       d.ReceiverID,
		PickupAddressID:  d.PickupAddressID,
		DropoffAddressID: d.DropoffAddressID,
		Status:           string(d.Status),
		Note:             d.Note,
		RequestedAt:      d.RequestedAt,
		AssignedAt:       d.AssignedAt,
		PickedAt:         d.PickedAt,
		DeliveredAt:      d.DeliveredAt,
	}
}

func deliveriesToResponse(list []domain.Delivery) []deliveryResponse {
	out := make([]deliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, deliveryToResponse(d))
	}
	return out
}

func advanceResultToResponse(res lifecycle.Result) advanceDeliveryResponse {
	out := advanceDeliveryResponse{Delivery: deliveryToResponse(res.Delivery)}
	if res.Assignment != nil {
		a := assignmentToResponse(*res.Assignment)
		out.Assignment = &a
	}
	return out
}

func currentJobToResponse(job domain.CurrentJob) currentJobResponse {
	return currentJobResponse{
		Assignment: assignmentToResponse(job.Assignment),
		Delivery:   deliveryToResponse(job.Delivery),
	}
}

func sampleToResponse(s domain.LocationSample) locationResponse {
	return locationResponse{
		CourierID:  s.CourierID,
		Lat:        s.Coords.Lat,
		Lng:        s.Coords.Lng,
		RecordedAt: s.RecordedAt,
	}
}
