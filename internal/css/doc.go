// Package css turns icon sets into stylesheet rules.
//
// Every icon becomes one class whose content is the icon itself,
// embedded as an SVG data URL. Icons drawn in currentColor render
// through a CSS mask so they pick up the text color; everything else
// renders as a plain background image.
package css
