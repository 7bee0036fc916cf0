package practicum

import "fmt"

// Verdict texts for the documented status codes. Anything else the API
// returns is treated as an error, not silently forwarded.
var verdicts = map[string]string{
	"approved":  "Работа проверена: ревьюеру всё понравилось. Ура!",
	"reviewing": "Работа взята на проверку ревьюером.",
	"rejected":  "Работа проверена: у ревьюера есть замечания.",
}

// ParseStatus renders the notification text for a homework record.
// The status is validated before the name: an undocumented status on a
// nameless record reports ErrUnknownStatus.
func ParseStatus(hw Homework) (string, error) {
	verdict, ok := verdicts[hw.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, hw.Status)
	}
	if hw.HomeworkName == "" {
		return "", ErrMissingName
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", hw.HomeworkName, verdict), nil
}
