package toolbar

// Button IDs used by the default studio toolbar. The assistant button gets
// special text handling in the apply pass, so its ID is load-bearing.
const (
	ButtonNew        = "new"
	ButtonOpen       = "open"
	ButtonSave       = "save"
	ButtonExport     = "export"
	ButtonUndo       = "undo"
	ButtonRedo       = "redo"
	ButtonDelete     = "delete"
	ButtonAddNode    = "add_node"
	ButtonEditText   = "edit_text"
	ButtonAutoLayout = "auto_layout"
	ButtonAssistant  = "assistant"
	ButtonLearn      = "learn"
	ButtonGuide      = "guide"
	ButtonLanguage   = "language"
	ButtonHelp       = "help"
)

// DefaultToolbar builds the standard studio toolbar: file and edit groups
// leading, node tools centered, assistant and view groups trailing.
func DefaultToolbar() *Toolbar {
	t := New()
	t.AddGroup(SectionLeading, NewGroup("file", "group.file",
		NewButton(ButtonNew, "✚", "button.new"),
		NewButton(ButtonOpen, "▤", "button.open"),
		NewButton(ButtonSave, "◆", "button.save"),
		NewButton(ButtonExport, "↥", "button.export"),
	))
	t.AddGroup(SectionLeading, NewGroup("edit", "group.edit",
		NewButton(ButtonUndo, "↶", "button.undo"),
		NewButton(ButtonRedo, "↷", "button.redo"),
		NewButton(ButtonDelete, "✕", "button.delete"),
	))
	t.AddGroup(SectionCenter, NewGroup("node", "group.node",
		NewButton(ButtonAddNode, "●", "button.add_node"),
		NewButton(ButtonEditText, "✎", "button.edit_text"),
		NewButton(ButtonAutoLayout, "❖", "button.auto_layout"),
	))
	t.AddGroup(SectionTrailing, NewGroup("assistant", "group.assistant",
		NewButton(ButtonAssistant, "✦", ""),
		NewButton(ButtonLearn, "»", "button.learn"),
		NewButton(ButtonGuide, "▹", "button.guide"),
	))
	t.AddGroup(SectionTrailing, NewGroup("view", "group.view",
		NewButton(ButtonLanguage, "文", "button.language"),
		NewButton(ButtonHelp, "?", "button.help"),
	))
	return t
}
