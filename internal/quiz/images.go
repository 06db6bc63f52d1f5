package quiz

import (
	"fmt"
	"html"
	"path"
)

// ImageToken is the sentinel line replaced by an image tag.
const ImageToken = "::IMG::"

// ImageName returns the file name of the counter-th image of a quiz.
func ImageName(fm Frontmatter, counter int) (string, error) {
	name, base, err := splitImagePrefix(fm.ImgPrefix)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s_%05d.%s", name, base+counter, fm.ImgSuffix), nil
}

// ImageSource resolves an image file name against the quiz_path directory.
func ImageSource(fm Frontmatter, file string) string {
	return path.Join(fm.Path, file)
}

// imageTag builds the markup fragment for the counter-th image.
func imageTag(fm Frontmatter, counter int) (string, error) {
	file, err := ImageName(fm, counter)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<img src="%s" />`, html.EscapeString(ImageSource(fm, file))), nil
}
