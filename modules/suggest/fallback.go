package suggest

import "fmt"

// fallbackSuggestion returns a deterministic templated suggestion for the
// request. Identical input yields identical output, so calling UIs behave
// the same in every environment without a backend.
func fallbackSuggestion(req SuggestionRequest) string {
	switch req.Type {
	case "wedding":
		return fmt.Sprintf(`**Wedding Planning Suggestions**

**Theme:** Romantic Garden
**Guests:** %d
**Budget:** ₹%d

**Checklist:**
1. Book venue (40%% of budget)
2. Catering for %d guests
3. Photography & Videography
4. Decorations and flowers
5. Music and entertainment

**Timeline:**
- 6 months before: Book venue
- 3 months: Send invitations
- 1 month: Finalize menu
- 2 weeks: Confirm vendors`, req.Guests, req.Budget, req.Guests)

	case "birthday":
		return fmt.Sprintf(`**Birthday Party Suggestions**

**Theme:** Celebration Time
**Guests:** %d
**Budget:** ₹%d

**Checklist:**
1. Venue decoration
2. Cake and food
3. Games and activities
4. Invitations
5. Music and party favors

**Budget Breakdown:**
- Food: 40%%
- Decor: 20%%
- Entertainment: 20%%
- Miscellaneous: 20%%`, req.Guests, req.Budget)

	case "corporate":
		return fmt.Sprintf(`**Corporate Event Suggestions**

**Theme:** Professional Networking
**Guests:** %d
**Budget:** ₹%d

**Checklist:**
1. Conference venue booking
2. Catering and refreshments
3. Audio-visual equipment
4. Guest speaker arrangements
5. Networking activities

**Schedule:**
9:00 AM - Registration
10:00 AM - Keynote
1:00 PM - Lunch & Networking
3:00 PM - Workshops
5:00 PM - Closing`, req.Guests, req.Budget)

	default:
		return fmt.Sprintf(
			"Event planning suggestions for %s with %d guests and budget of ₹%d. "+
				"Consider venue booking, catering, decorations, and entertainment.",
			req.Type, req.Guests, req.Budget)
	}
}
