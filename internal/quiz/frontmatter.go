package quiz

import (
	"strconv"
	"strings"
)

const keySeparator = ":"

// frontmatterField binds a header key to the Frontmatter field it fills.
type frontmatterField struct {
	key string
	ptr func(*Frontmatter) *string
}

var frontmatterFields = []frontmatterField{
	{key: "title", ptr: func(fm *Frontmatter) *string { return &fm.Title }},
	{key: "date", ptr: func(fm *Frontmatter) *string { return &fm.Date }},
	{key: "status", ptr: func(fm *Frontmatter) *string { return &fm.Status }},
	{key: "img_prefix", ptr: func(fm *Frontmatter) *string { return &fm.ImgPrefix }},
	{key: "img_suffix", ptr: func(fm *Frontmatter) *string { return &fm.ImgSuffix }},
	{key: "quiz_path", ptr: func(fm *Frontmatter) *string { return &fm.Path }},
}

// ParseFrontmatter extracts and validates the quiz metadata from header lines.
func ParseFrontmatter(lines []Line) (Frontmatter, error) {
	var fm Frontmatter
	for _, line := range lines {
		if strings.Count(line.Text, keySeparator) > 1 {
			return Frontmatter{}, lineError(ErrFrontmatterSyntax, line, "only one colon is allowed per line")
		}
		for _, field := range frontmatterFields {
			prefix := field.key + keySeparator
			if strings.HasPrefix(line.Text, prefix) {
				*field.ptr(&fm) = strings.TrimSpace(strings.TrimPrefix(line.Text, prefix))
			}
		}
	}

	var missing []string
	for _, field := range frontmatterFields {
		if *field.ptr(&fm) == "" {
			missing = append(missing, field.key)
		}
	}
	if len(missing) > 0 {
		return Frontmatter{}, &MissingFieldsError{Fields: missing}
	}

	if _, _, err := splitImagePrefix(fm.ImgPrefix); err != nil {
		return Frontmatter{}, err
	}
	return fm, nil
}

// splitImagePrefix separates "name_00010" into its name and numeric base.
func splitImagePrefix(prefix string) (string, int, error) {
	parts := strings.Split(prefix, "_")
	if len(parts) != 2 || parts[0] == "" {
		return "", 0, &ParseError{
			Kind:    ErrFrontmatterSyntax,
			Message: "img_prefix must look like <name>_<number>",
			Text:    prefix,
		}
	}
	number, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", 0, &ParseError{
			Kind:    ErrFrontmatterSyntax,
			Message: "img_prefix must end in a number",
			Text:    prefix,
		}
	}
	return parts[0], number, nil
}
