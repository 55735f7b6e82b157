package market

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mvetrov/assetmart-cli/internal/domain"
)

type RenderOptions struct {
	Now time.Time
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

func RenderSession(session domain.Session, opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Assetmart session"),
		s.header.Render(fmt.Sprintf("state: %s", session.State())),
	}

	if session.User != nil {
		user := session.User
		lines = append(lines, s.item.Render(fmt.Sprintf("%s <%s>", user.Username, user.Email)))

		roles := make([]string, 0, len(user.Roles))
		for _, role := range user.Roles {
			roles = append(roles, role.Name)
		}
		if len(roles) > 0 {
			lines = append(lines, s.detail.Render("roles: "+strings.Join(roles, ", ")))
		}
		if session.IsAdmin() {
			lines = append(lines, s.warning.Render("admin access"))
		}
	}

	if session.Error != "" {
		lines = append(lines, s.warning.Render("last error: "+session.Error))
	}
	if session.State() == domain.SessionAnonymous {
		lines = append(lines, s.empty.Render("Not signed in. Run `am login`."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderListings(page domain.Page[domain.Listing], opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Listings"),
		s.header.Render(fmt.Sprintf("total: %d", page.Total)),
	}

	if len(page.Items) == 0 {
		lines = append(lines, s.empty.Render("No listings on this page."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, listing := range page.Items {
		block := []string{
			s.item.Render(fmt.Sprintf("#%d %s", listing.ID, listing.Title)),
			s.detail.Render(fmt.Sprintf("%s · %s · %s",
				listing.AssetType,
				formatMoney(listing.Price, listing.Currency),
				statusStyle(listing.Status.Color()).Render(listing.Status.Label()))),
		}
		if !listing.CreatedAt.IsZero() {
			block = append(block, s.meta.Render("listed "+formatAge(listing.CreatedAt, opts.Now)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	lines = append(lines, s.section.Render(renderPageFooter(page.TotalPages, page.Page, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderOffers(page domain.Page[domain.Offer], opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Offers"),
		s.header.Render(fmt.Sprintf("total: %d", page.Total)),
	}

	if len(page.Items) == 0 {
		lines = append(lines, s.empty.Render("No offers on this page."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, offer := range page.Items {
		block := []string{
			s.item.Render(fmt.Sprintf("#%d on listing %d", offer.ID, offer.ListingID)),
			s.detail.Render(fmt.Sprintf("%s · %s",
				formatMoney(offer.Amount, offer.Currency),
				statusStyle(offer.Status.Color()).Render(offer.Status.Label()))),
		}
		if offer.Message != "" {
			block = append(block, s.meta.Render(offer.Message))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	lines = append(lines, s.section.Render(renderPageFooter(page.TotalPages, page.Page, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderOrders(page domain.Page[domain.Order], opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Orders"),
		s.header.Render(fmt.Sprintf("total: %d", page.Total)),
	}

	if len(page.Items) == 0 {
		lines = append(lines, s.empty.Render("No orders on this page."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, order := range page.Items {
		block := []string{
			s.item.Render(fmt.Sprintf("#%d listing %d", order.ID, order.ListingID)),
			s.detail.Render(fmt.Sprintf("%s · %s · escrow %s",
				formatMoney(order.Amount, order.Currency),
				statusStyle(order.Status.Color()).Render(order.Status.Label()),
				statusStyle(order.EscrowStatus.Color()).Render(order.EscrowStatus.Label()))),
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	lines = append(lines, s.section.Render(renderPageFooter(page.TotalPages, page.Page, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderFAQs(faqs []domain.FAQ) string {
	s := newStyles()

	lines := []string{s.title.Render("FAQ")}
	if len(faqs) == 0 {
		lines = append(lines, s.empty.Render("No FAQ entries."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, faq := range faqs {
		block := []string{
			s.item.Render(faq.Question),
			s.detail.Render(faq.Answer),
		}
		if faq.Category != "" {
			block = append(block, s.meta.Render(faq.Category))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func RenderConversations(page domain.Page[domain.Conversation], opts RenderOptions) string {
	s := newStyles()

	lines := []string{
		s.title.Render("Conversations"),
		s.header.Render(fmt.Sprintf("total: %d", page.Total)),
	}

	if len(page.Items) == 0 {
		lines = append(lines, s.empty.Render("No conversations."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, conversation := range page.Items {
		label := fmt.Sprintf("#%d %s", conversation.ID, conversation.Subject)
		if conversation.UnreadCount > 0 {
			label += fmt.Sprintf(" (%d unread)", conversation.UnreadCount)
		}
		block := []string{s.item.Render(label)}
		if !conversation.LastMessageAt.IsZero() {
			block = append(block, s.meta.Render("last message "+formatAge(conversation.LastMessageAt, opts.Now)))
		}
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, block...)))
	}

	lines = append(lines, s.section.Render(renderPageFooter(page.TotalPages, page.Page, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPageFooter(totalPages, currentPage int, s styles) string {
	window := domain.PageWindow(totalPages, currentPage)
	if len(window) <= 1 {
		return ""
	}

	parts := make([]string, 0, len(window)+2)
	if window[0] > 1 {
		parts = append(parts, s.pageFaint.Render("…"))
	}
	for _, page := range window {
		label := fmt.Sprintf("%d", page)
		if page == currentPage {
			parts = append(parts, s.pageHere.Render("["+label+"]"))
			continue
		}
		parts = append(parts, s.pageFaint.Render(label))
	}
	if window[len(window)-1] < totalPages {
		parts = append(parts, s.pageFaint.Render("…"))
	}

	return strings.Join(parts, " ")
}

func formatMoney(amount float64, currency string) string {
	if symbol, ok := currencySymbols[strings.ToUpper(currency)]; ok {
		return fmt.Sprintf("%s%.2f", symbol, amount)
	}
	if currency == "" {
		return fmt.Sprintf("%.2f", amount)
	}

	return fmt.Sprintf("%.2f %s", amount, currency)
}

func formatAge(at, now time.Time) string {
	if now.IsZero() {
		now = time.Now()
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
