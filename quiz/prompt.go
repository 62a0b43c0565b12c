package quiz

import "github.com/fwojciec/docquiz"

// instructions frame every quiz request. They are sent in order, ahead of
// the documentation block.
var instructions = []docquiz.Message{
	{Role: docquiz.RoleSystem, Content: "You are a quiz Master and Python Expert."},
	{Role: docquiz.RoleSystem, Content: "You will receive a piece of Python documentation and you will generate a question based on it."},
	{Role: docquiz.RoleSystem, Content: "You will also generate 4 answers, one of which is correct."},
	{Role: docquiz.RoleSystem, Content: "Provide everything in a json format with keys: question and options, options have keys answer and correct. " +
		"Return your answer wrapped in a json object without remarks."},
}

// BuildMessages returns the full prompt for block: the fixed instructions
// followed by a user message carrying the block.
func BuildMessages(block string) []docquiz.Message {
	messages := make([]docquiz.Message, 0, len(instructions)+1)
	messages = append(messages, instructions...)
	return append(messages, docquiz.Message{
		Role:    docquiz.RoleUser,
		Content: "Generate quiz question and answers for the following: " + block,
	})
}
