package domain

// Presentation lookups shared by API clients. Unknown values fall back to the raw value.

var statusLabels = map[ContactStatus]string{
	ContactStatusLead:     "Lead",
	ContactStatusProspect: "Prospect",
	ContactStatusClient:   "Client",
	ContactStatusInactive: "Inactif",
}

var statusColors = map[ContactStatus]string{
	ContactStatusLead:     "blue",
	ContactStatusProspect: "amber",
	ContactStatusClient:   "green",
	ContactStatusInactive: "gray",
}

var eventLabels = map[ContactEventType]string{
	ContactEventTypeNote:         "Note",
	ContactEventTypeStatusChange: "Changement de statut",
	ContactEventTypeCreated:      "Contact créé",
}

var contactTypeLabels = map[ContactType]string{
	ContactTypeIndividual: "Particulier",
	ContactTypeCompany:    "Entreprise",
}

// StatusLabel returns the display label of a status
func StatusLabel(s ContactStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// StatusColor returns the badge colour of a status, empty when unknown
func StatusColor(s ContactStatus) string {
	return statusColors[s]
}

// EventLabel returns the display label of an event type
func EventLabel(t ContactEventType) string {
	if label, ok := eventLabels[t]; ok {
		return label
	}
	return string(t)
}

// ContactTypeLabel returns the display label of a contact type
func ContactTypeLabel(t ContactType) string {
	if label, ok := contactTypeLabels[t]; ok {
		return label
	}
	return string(t)
}
