package components

// Catalogue returns a fresh definition of every built-in component.
func Catalogue() []*Definition {
	return []*Definition{
		accordionDefinition(),
		alertDefinition(),
		avatarDefinition(),
		badgeDefinition(),
		breadcrumbsDefinition(),
		buttonDefinition(),
		buttonGroupDefinition(),
		calendarDefinition(),
		cardDefinition(),
		carouselDefinition(),
		collapseDefinition(),
		dropdownDefinition(),
		faqDefinition(),
		inputDefinition(),
		kanbanBoardDefinition(),
		kanbanCardDefinition(),
		kanbanColumnDefinition(),
		linkDefinition(),
		listGroupDefinition(),
		modalDefinition(),
		navbarDefinition(),
		offcanvasDefinition(),
		paginationDefinition(),
		pricingCardDefinition(),
		progressDefinition(),
		ratingDefinition(),
		selectDefinition(),
		spinnerDefinition(),
		stepperDefinition(),
		tabsDefinition(),
		timelineDefinition(),
		toastDefinition(),
		tourDefinition(),
	}
}
