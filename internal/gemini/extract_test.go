package gemini

import "testing"

func TestExtractObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "bare object",
			text: `{"events": []}`,
			want: `{"events": []}`,
		},
		{
			name: "object with surrounding prose",
			text: "Here is the data you asked for:\n{\"events\": []}\nLet me know if you need more.",
			want: `{"events": []}`,
		},
		{
			name: "fenced json block",
			text: "Sure!\n```json\n{\"events\": [{\"id\": \"a\"}]}\n```\nHope that helps.",
			want: `{"events": [{"id": "a"}]}`,
		},
		{
			name: "fenced block without language tag",
			text: "```\n{\"events\": []}\n```",
			want: `{"events": []}`,
		},
		{
			name: "nested objects stay balanced",
			text: `prose {"a": {"b": {"c": 1}}, "d": 2} trailing`,
			want: `{"a": {"b": {"c": 1}}, "d": 2}`,
		},
		{
			name: "braces inside strings do not break balance",
			text: `{"title": "The {Gold} Rush", "note": "brace } in string"}`,
			want: `{"title": "The {Gold} Rush", "note": "brace } in string"}`,
		},
		{
			name: "escaped quote inside string",
			text: `{"title": "a \" quote", "n": 1}`,
			want: `{"title": "a \" quote", "n": 1}`,
		},
		{
			name: "no object at all",
			text: "just prose, nothing structured",
			want: "",
		},
		{
			name: "unbalanced object",
			text: `{"events": [`,
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractObject(tt.text); got != tt.want {
				t.Errorf("extractObject() = %q, want %q", got, tt.want)
			}
		})
	}
}
