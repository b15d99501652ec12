// Package vision provides a Cloud Vision text extractor for document uploads.
package vision

import (
	"context"
	"fmt"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"parksarthi_backend/internal/feature/documents/usecase"
)

// VisionTextScanner extracts text from document images using the Cloud
// Vision API.
type VisionTextScanner struct {
	client *gvision.ImageAnnotatorClient
}

// Compile-time check that VisionTextScanner implements TextScanner.
var _ usecase.TextScanner = (*VisionTextScanner)(nil)

// NewVisionTextScanner creates a new VisionTextScanner using ADC.
func NewVisionTextScanner(ctx context.Context) (*VisionTextScanner, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionTextScanner{client: client}, nil
}

// Close releases the Vision API client.
func (v *VisionTextScanner) Close() error {
	return v.client.Close()
}

// ScanText extracts the full text annotation from an image.
func (v *VisionTextScanner) ScanText(ctx context.Context, imageData []byte) (string, error) {
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_TEXT_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return "", nil
	}

	if resp.Responses[0].Error != nil {
		return "", fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	if resp.Responses[0].FullTextAnnotation == nil {
		return "", nil
	}
	return resp.Responses[0].FullTextAnnotation.Text, nil
}
