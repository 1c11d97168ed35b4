package main

// Layout constants for the TUI
const (
	headerRows = 2 // title + separator
	footerRows = 1

	lineNumWidth = 4 // width of each line number column
	gutterWidth  = 2 // marker + space before each number column

	dividerWidth = 3 // " │ " between the two panes

	helpModalMaxWidth  = 56
	helpModalMaxHeight = 26
	helpModalPadding   = 4
)

// contentHeight calculates the rows available for diff content.
func contentHeight(totalHeight int) int {
	return max(1, totalHeight-headerRows-footerRows)
}

// paneWidth calculates the width of one side's text area.
func paneWidth(totalWidth int) int {
	usable := totalWidth - dividerWidth - 2*(gutterWidth+lineNumWidth+1)
	return max(10, usable/2)
}

// helpModalDimensions calculates the dimensions for the help modal.
func helpModalDimensions(screenWidth, screenHeight int) (width, height int) {
	width = min(helpModalMaxWidth, screenWidth-helpModalPadding)
	height = min(helpModalMaxHeight, screenHeight-helpModalPadding)
	return width, height
}
