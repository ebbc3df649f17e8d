package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"fhr-mart/libs"
	"fhr-mart/repositories"
)

const (
	adviceOfflineMessage  = "AI assistance is currently offline. Please check back later."
	adviceFallbackMessage = "The store's AI is resting. Feel free to browse our premium collection manually!"
	adviceEmptyMessage    = "I'm having trouble thinking right now. How can I help you today?"
)

// AdviceService forwards shopper queries to the Gemini API together with a
// snapshot of the catalog. It never fails past its boundary: missing
// credentials and remote errors both come back as displayable strings.
type AdviceService struct {
	gemini      *libs.GeminiClient
	catalogRepo *repositories.CatalogRepository
}

func NewAdviceService(gemini *libs.GeminiClient, catalogRepo *repositories.CatalogRepository) *AdviceService {
	return &AdviceService{gemini: gemini, catalogRepo: catalogRepo}
}

func (s *AdviceService) GetShoppingAdvice(ctx context.Context, userQuery string) string {
	if !s.gemini.Configured() {
		return adviceOfflineMessage
	}

	var productList strings.Builder
	for _, p := range s.catalogRepo.GetAllProducts() {
		fmt.Fprintf(&productList, "%s (Rs. %d) - %s\n", p.Name, p.Price, p.Description)
	}

	prompt := fmt.Sprintf(`User is looking for something: %q.
Here is our product catalog with prices in Pakistani Rupees (PKR):
%s
Act as a high-end personal shopper for "FHR Mart".
Recommend the best 1-2 products from the catalog or explain why we might not have a perfect match.
Keep it short, friendly, and stylish. Mention prices using the "Rs." prefix.
Mention Fida HussaiN Rana's commitment to quality for the Pakistani market.`, userQuery, productList.String())

	text, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		log.Printf("Gemini error: %v", err)
		return adviceFallbackMessage
	}
	if text == "" {
		return adviceEmptyMessage
	}
	return text
}
