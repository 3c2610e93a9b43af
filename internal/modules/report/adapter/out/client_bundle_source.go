package out

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	clientin "focusflow/internal/modules/client/port/in"
	reportout "focusflow/internal/modules/report/port/out"
)

// ClientBundleSource fetches the analytics bundle through the REST client.
type ClientBundleSource struct {
	client clientin.Analytics
}

func NewClientBundleSource(client clientin.Analytics) reportout.BundleSource {
	return &ClientBundleSource{client: client}
}

func (s *ClientBundleSource) Bundle(ctx context.Context) (analyticsdto.Bundle, error) {
	return s.client.Analytics(ctx)
}
