package agent

import "regexp"

// casualRule pairs a small-talk trigger with the prompt used to answer
// it without retrieval.
type casualRule struct {
	pattern *regexp.Regexp
	prompt  string
}

// casualRules is the small-talk classifier: evaluated top to bottom,
// first match wins, so the order is the tie-break for questions
// matching more than one rule. Matching is case-insensitive substring
// matching, not exact phrase matching.
var casualRules = []casualRule{
	{regexp.MustCompile(`(?i)how are you`), "Reply to 'How are you?' in a friendly, conversational way."},
	{regexp.MustCompile(`(?i)what's up`), "Reply to 'What's up?' in a casual, conversational way."},
	{regexp.MustCompile(`(?i)hello|hi|hey`), "Greet the user in a friendly way."},
	{regexp.MustCompile(`(?i)who are you`), "Briefly introduce yourself as an AI assistant."},
	{regexp.MustCompile(`(?i)your name`), "Tell the user you are the resident AI assistant."},
	{regexp.MustCompile(`(?i)thank(s| you)`), "Reply to thanks in a polite way."},
	{regexp.MustCompile(`(?i)good morning`), "Wish the user a good morning in a friendly way."},
	{regexp.MustCompile(`(?i)good afternoon`), "Wish the user a good afternoon in a friendly way."},
	{regexp.MustCompile(`(?i)good evening`), "Wish the user a good evening in a friendly way."},
	{regexp.MustCompile(`(?i)good night`), "Wish the user a good night in a friendly way."},
	{regexp.MustCompile(`(?i)bye|goodbye|see you`), "Say goodbye to the user in a friendly way."},
	{regexp.MustCompile(`(?i)tell me a joke`), "Tell a short, friendly computer-related joke."},
	{regexp.MustCompile(`(?i)how old are you`), "Reply to 'How old are you?' as an AI assistant."},
}

// matchCasual returns the prompt of the first rule matching the
// question, if any.
func matchCasual(question string) (string, bool) {
	for _, rule := range casualRules {
		if rule.pattern.MatchString(question) {
			return rule.prompt, true
		}
	}
	return "", false
}
