package strategy

import "loadorder/internal/domain"

// IsSynchronised checks whether order and activation agree. Only the
// Textfile method can disagree with itself, since it is the only method
// that keeps order and activation in two separate files; Timestamp and
// Asterisk are trivially synchronised.
func IsSynchronised(settings *domain.GameSettings) (bool, error) {
	if settings.Method() != domain.MethodTextfile {
		return true, nil
	}

	loadOrder, err := readLoadOrderFile(settings.LoadOrderFile)
	if err != nil {
		return false, err
	}
	if loadOrder == nil {
		return true, nil
	}

	active, err := readActiveFilePlain(settings.ActivePluginsFile)
	if err != nil {
		return false, err
	}
	if active == nil {
		return true, nil
	}

	positions := make(map[string]int, len(loadOrder))
	for i, name := range loadOrder {
		positions[domain.AsciiFold(name)] = i
	}

	lastPos := -1
	for _, name := range active {
		pos, ok := positions[domain.AsciiFold(name)]
		if !ok {
			continue
		}
		if pos < lastPos {
			return false, nil
		}
		lastPos = pos
	}
	return true, nil
}
