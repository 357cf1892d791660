package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"

	"github.com/icu4g/ucore/upservice"
)

func browseCmd(load serviceLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Launch a full-screen browser over the loaded property data",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := load()
			if err != nil {
				return err
			}
			return newBrowser(svc).Run()
		},
	}
}

// browser is a tview TUI that walks the code-point space block by block,
// the way debugger.TUI walks memory a page at a time: a block table on the
// left, the full property record for the selected code point on the
// right, and a jump-to-code-point input field.
type browser struct {
	svc *upservice.Service

	app        *tview.Application
	blockTable *tview.Table
	detailView *tview.TextView
	jumpInput  *tview.InputField

	blockStart rune
}

const browseBlockSize = 16

func newBrowser(svc *upservice.Service) *browser {
	b := &browser{
		svc: svc,
		app: tview.NewApplication(),
	}
	b.initViews()
	return b
}

func (b *browser) initViews() {
	b.blockTable = tview.NewTable().SetBorders(false).SetSelectable(true, false)
	b.blockTable.SetBorder(true).SetTitle(" Code Points ")
	b.blockTable.SetSelectedFunc(func(row, col int) {
		cp := b.blockStart + rune(row)
		b.showDetail(cp)
	})
	b.blockTable.SetSelectionChangedFunc(func(row, col int) {
		cp := b.blockStart + rune(row)
		b.showDetail(cp)
	})

	b.detailView = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	b.detailView.SetBorder(true).SetTitle(" Record ")

	b.jumpInput = tview.NewInputField().SetLabel("U+").SetFieldWidth(8)
	b.jumpInput.SetBorder(true).SetTitle(" Jump to code point (Enter) ")
	b.jumpInput.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		cp, err := parseCodePoint(b.jumpInput.GetText())
		if err != nil {
			return
		}
		b.setBlockStart(cp - cp%browseBlockSize)
		b.app.SetFocus(b.blockTable)
	})

	b.setBlockStart(0x0041 - 0x0041%browseBlockSize)
}

func (b *browser) Run() error {
	right := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.jumpInput, 3, 0, false).
		AddItem(b.detailView, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(b.blockTable, 0, 1, true).
		AddItem(right, 0, 2, false)

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			b.app.Stop()
			return nil
		case tcell.KeyPgDn:
			b.setBlockStart(b.blockStart + browseBlockSize*rune(b.blockTable.GetRowCount()))
			return nil
		case tcell.KeyPgUp:
			b.setBlockStart(b.blockStart - browseBlockSize*rune(b.blockTable.GetRowCount()))
			return nil
		case tcell.KeyTab:
			if b.app.GetFocus() == b.blockTable {
				b.app.SetFocus(b.jumpInput)
			} else {
				b.app.SetFocus(b.blockTable)
			}
			return nil
		}
		return event
	})

	return b.app.SetRoot(root, true).SetFocus(b.blockTable).Run()
}

// setBlockStart repaints blockTable starting at the code point block
// containing start, clamped so it never goes negative.
func (b *browser) setBlockStart(start rune) {
	if start < 0 {
		start = 0
	}
	b.blockStart = start

	b.blockTable.Clear()
	const rows = 32
	for row := rune(0); row < rows; row++ {
		cp := start + row
		label := fmt.Sprintf("U+%04X", cp)
		category := "?"
		if info, err := b.svc.Char(cp); err == nil {
			category = info.Category
		}
		b.blockTable.SetCell(int(row), 0, tview.NewTableCell(label))
		b.blockTable.SetCell(int(row), 1, tview.NewTableCell(category))
	}
	b.showDetail(start)
}

func (b *browser) showDetail(cp rune) {
	info, err := b.svc.Char(cp)
	if err != nil {
		b.detailView.SetText(fmt.Sprintf("[red]%v[white]", err))
		return
	}

	text := fmt.Sprintf("U+%04X\ncategory: %s\nbidi class: %s\nmirrored: %t\ncombining class: %d\n",
		info.CodePoint, info.Category, info.BidiClass, info.Mirrored, info.CombiningClass)
	if info.Uppercase != 0 {
		text += fmt.Sprintf("uppercase: U+%04X\n", info.Uppercase)
	}
	if info.Lowercase != 0 {
		text += fmt.Sprintf("lowercase: U+%04X\n", info.Lowercase)
	}
	if info.Titlecase != 0 {
		text += fmt.Sprintf("titlecase: U+%04X\n", info.Titlecase)
	}
	if info.HasDigitValue {
		text += fmt.Sprintf("digit value: %d\n", info.DigitValue)
	}
	b.detailView.SetText(text)
}
