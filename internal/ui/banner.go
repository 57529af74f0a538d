package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"
)

const bannerText = `
__     __                                   ____  _            _   _
\ \   / /_ _  ___ __ _ _ __   ___ _   _    / ___|| | ___ _   _| |_| |__
 \ \ / / _' |/ __/ _' | '_ \ / __| | | |   \___ \| |/ _ \ | | | __| '_ \
  \ V / (_| | (_| (_| | | | | (__| |_| |    ___) | |  __/ |_| | |_| | | |
   \_/ \__,_|\___\__,_|_| |_|\___|\__, |   |____/|_|\___|\__,_|\__|_| |_|
                                  |___/   hh.ru + superjob.ru salaries
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	steps := float32(len(chars))

	var sb strings.Builder
	for i, ch := range chars {
		sb.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(ch))
	}
	return sb.String()
}

// PrintBanner displays the application banner
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}

// ColorizeSalary colors an average salary by band
func ColorizeSalary(salary int, formatted string) string {
	switch {
	case salary <= 0:
		return pterm.Red("Not Available")
	case salary >= 300000:
		return pterm.Green(formatted)
	case salary >= 200000:
		return pterm.LightGreen(formatted)
	case salary >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
