package queries

import (
	"context"
)

// GetDispatchWeightsQueryHandler returns the current weights, creating the
// default record on first read.
type GetDispatchWeightsQueryHandler struct {
	settings SettingsReader
}

func NewGetDispatchWeightsQueryHandler(settings SettingsReader) GetDispatchWeightsQueryHandler {
	return GetDispatchWeightsQueryHandler{settings: settings}
}

func (h GetDispatchWeightsQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchWeightsQuery,
) (GetDispatchWeightsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDispatchWeightsQueryResponse{}, err
	}

	w, err := h.settings.GetCurrent(ctx)
	if err != nil {
		return GetDispatchWeightsQueryResponse{}, err
	}

	return GetDispatchWeightsQueryResponse{
		Distance: w.Distance(),
		Rating:   w.Rating(),
		Workload: w.Workload(),
		Response: w.Response(),
		Version:  w.Version(),
	}, nil
}
