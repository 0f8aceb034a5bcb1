// Copyright © 2025 The whyerr authors

package lang

// defaultTemplates is the built-in English catalogue. The wording follows
// the conventions beginners see in teaching material: short sentences,
// concrete, no jargon beyond what the host runtime itself uses.
var defaultTemplates = map[string]string{
	// Shared.
	"cause.header": "Likely cause based on the information given by Python:",
	"cause.no-info": "No information is known about this exception.\n" +
		"Please report this example to\n" +
		"https://github.com/whyerr/whyerr/issues\n",
	"more-info": "I will attempt to give a bit more information.\n\n",

	// Generic per-kind descriptions, shown before any inferred cause.
	"generic.unknown": "No information is known about this exception.\n",
	"generic.name-not-found": "A NameError exception indicates that a variable or\n" +
		"function name is not known to Python.\n" +
		"Most often, this is because there is a spelling mistake.\n" +
		"However, sometimes it is because the name is used\n" +
		"before being defined or given a value.\n",
	"generic.file-not-found": "A FileNotFoundError exception indicates that you\n" +
		"are trying to open a file that cannot be found by your computer.\n" +
		"Perhaps you misspelled the name of the file\n" +
		"or are not in the right directory.\n",
	"generic.import-not-found": "This exception indicates that a certain object\n" +
		"could not be imported from a module or package.\n" +
		"Most often, this is because the name of the object is misspelled.\n",
	"generic.key-not-found": "A KeyError is raised when a value is not found as a\n" +
		"key in a Python dict or in a similar object.\n",
	"generic.module-not-found": "A ModuleNotFoundError exception indicates that you\n" +
		"are trying to import a module that cannot be found by Python.\n" +
		"This could be because it is not installed or\n" +
		"because its name is misspelled.\n",
	"generic.type-mismatch": "A TypeError is usually caused by trying\n" +
		"to combine two incompatible types of objects,\n" +
		"by calling a function with the wrong type of object,\n" +
		"or by trying to do an operation not allowed on a given type of object.\n",
	"generic.attribute-not-found": "An AttributeError occurs when the object to the left\n" +
		"of a period does not have the attribute (name)\n" +
		"written to the right of the period.\n",
	"generic.local-before-assignment": "In Python, variables used inside a function are known as\n" +
		"local variables. Before they are used, they must be assigned a value.\n" +
		"An UnboundLocalError occurs when a local variable is used before\n" +
		"it is assigned a value inside a function.\n",
	"generic.overflow": "An OverflowError is raised when the result of an arithmetic\n" +
		"operation is too large to be handled by the computer's processor.\n",
	"generic.zero-division": "A ZeroDivisionError occurs when you try to divide a value\n" +
		"by zero, either directly or by using some other\n" +
		"mathematical operation such as modulo.\n",
	"generic.syntax": "A SyntaxError occurs when Python cannot understand your code.\n" +
		"This could be because of a spelling mistake, a missing symbol,\n" +
		"or the use of a symbol in a place where Python does not expect it.\n",

	// Generic placeholders used when the offending text cannot be
	// recovered verbatim.
	"placeholder.function-call": "my_function(...)",
	"placeholder.value":         "some value",

	// Syntax-message analyzers.
	"syntax.assign-constant": "{keyword} is a constant in Python; you cannot assign it a value.\n\n",
	"syntax.assign-keyword": "You were trying to assign a value to the Python keyword '{keyword}'.\n" +
		"This is not allowed.\n\n",
	"syntax.assign-function-call": "You wrote the expression\n" +
		"    {fn_call} = {value}\n" +
		"where {fn_call}, on the left hand-side of the equal sign, either is\n" +
		"or includes a function call and is not simply the name of a variable.\n",
	"syntax.assign-function-call-generic": "You wrote an expression like\n" +
		"    {fn_call} = {value}\n" +
		"where {fn_call}, on the left hand-side of the equal sign, is\n" +
		"a function call and not the name of a variable.\n",
	"syntax.assign-literal": "You wrote an expression like\n" +
		"    {literal} = {name}\n" +
		"where <{literal}>, on the left hand-side of the equal sign, is\n" +
		"or includes an actual number or string (what Python calls a 'literal'),\n" +
		"and not the name of a variable.",
	"syntax.assign-literal-suggest": " Perhaps you meant to write:\n" +
		"    {name} = {literal}\n\n",
	"syntax.break-outside-loop": "The Python keyword 'break' can only be used " +
		"inside a for loop or inside a while loop.\n",
	"syntax.continue-outside-loop": "The Python keyword 'continue' can only be used " +
		"inside a for loop or inside a while loop.\n",
	"syntax.delete-function-call": "You attempted to delete a function call\n" +
		"    {line}\n" +
		"instead of deleting the function's name\n" +
		"    {correct}\n",
	"syntax.eol-in-string": "You started writing a string with a single or double quote\n" +
		"but never ended the string with another quote on that line.\n",
	"syntax.assignment-in-expression": "One of the following two possibilities could be the cause:\n" +
		"1. You meant to do a comparison with == and wrote = instead.\n" +
		"2. You called a function with a named argument:\n\n" +
		"       a_function(invalid=something)\n\n" +
		"where 'invalid' is not a valid variable name in Python\n" +
		"either because it starts with a number, or is a string,\n" +
		"or contains a period, etc.\n\n",
	"syntax.keyword-as-expression": "You likely called a function with a named argument:\n\n" +
		"   a_function(invalid=something)\n\n" +
		"where 'invalid' is not a valid variable name in Python\n" +
		"either because it starts with a number, or is a string,\n" +
		"or contains a period, etc.\n\n",
	"syntax.invalid-identifier-char": "You likely used some unicode character that is not allowed\n" +
		"as part of a variable name in Python.\n" +
		"This includes many emojis.\n\n",
	"syntax.mismatched-bracket-line": "Python tells us that the closing '{closing}' on the last line shown\n" +
		"does not match the opening '{opening}' on line {linenumber}.\n\n",
	"syntax.mismatched-bracket": "Python tells us that the closing '{closing}' on the last line shown\n" +
		"does not match the opening '{opening}'.\n\n",
	"syntax.unterminated-fstring": "Inside an f-string, which is a string prefixed by the letter f,\n" +
		"you have another string, which starts with either a\n" +
		"single quote (') or double quote (\"), without a matching closing one.\n",
	"syntax.parameter-and-global": "You are including the statement\n\n" +
		"    {newline}\n\n" +
		"indicating that '{name}' is a variable defined outside a function.\n" +
		"You are also using the same '{name}' as an argument for that\n" +
		"function, thus indicating that it should be variable known only\n" +
		"inside that function, which is the contrary of what 'global' implied.\n",
	"syntax.assigned-before-global": "You assigned a value to the variable '{name}'\n" +
		"before declaring it as a global variable.\n",
	"syntax.used-before-global": "You used the variable '{name}'\n" +
		"before declaring it as a global variable.\n",
	"syntax.assigned-before-nonlocal": "You assigned a value to the variable '{name}'\n" +
		"before declaring it as a nonlocal variable.\n",
	"syntax.used-before-nonlocal": "You used the variable '{name}'\n" +
		"before declaring it as a nonlocal variable.\n",
	"syntax.continuation-character": "You are using the continuation character '\\' outside of a string,\n" +
		"and it is followed by some other character(s).\n" +
		"I am guessing that you forgot to enclose some content in a string.\n\n",
	"syntax.unexpected-eof": "Python tells us that it reached the end of the file\n" +
		"and expected more content.\n\n" +
		"I will attempt to give a bit more information.\n\n",
	"syntax.unmatched-closer": "The closing {bracket} on line {linenumber} does not match anything.\n",
	"syntax.positional-after-keyword": "In Python, you can call functions with only positional arguments\n\n" +
		"    test(1, 2, 3)\n\n" +
		"or only keyword arguments\n\n" +
		"    test(a=1, b=2, c=3)\n\n" +
		"or a combination of the two\n\n" +
		"    test(1, 2, c=3)\n\n" +
		"but with the keyword arguments appearing after all the positional ones.\n" +
		"According to Python, you used positional arguments after keyword ones.\n",
	"syntax.non-default-after-default": "In Python, you can define functions with only positional arguments\n\n" +
		"    def test(a, b, c): ...\n\n" +
		"or only keyword arguments\n\n" +
		"    def test(a=1, b=2, c=3): ...\n\n" +
		"or a combination of the two\n\n" +
		"    def test(a, b, c=3): ...\n\n" +
		"but with the keyword arguments appearing after all the positional ones.\n" +
		"According to Python, you used positional arguments after keyword ones.\n",
	"syntax.legacy-print": "Perhaps you need to type print({message})?\n\n" +
		"In older version of Python, 'print' was a keyword.\n" +
		"Now, 'print' is a function; you need to use parentheses to call it.\n",

	// File / key / module lookups.
	"file.not-found": "In your program, the name of the\n" +
		"file that cannot be found is `{filename}`.\n",
	"key.not-found": "In your program, the key that cannot be found is `{key}`.\n",
	"module.not-found": "In your program, the module that cannot be found is `{module}`.\n" +
		"It is not part of the standard library and does not appear\n" +
		"to be installed.\n",

	// Import faults.
	"import.object-and-module": "The object that could not be imported is `{name}`.\n" +
		"The module or package where it was \n" +
		"expected to be found is `{module}`.\n",
	"import.object-only":      "The object that could not be imported is `{name}`.\n",
	"import.circular-suggest": "You have a circular import.\n",
	"import.circular-noted": "Python indicated that you have a circular import.\n" +
		"This can occur if executing the code in module 'A'\n" +
		"results in executing the code in module 'B' where\n" +
		"an attempt to import a name from module 'A' is made\n" +
		"before the execution of the code in module 'A' had been completed.\n",
	"import.circular-narrative": "The problem was likely caused by what is known as a 'circular import'.\n" +
		"First, Python imported and started executing the code in file\n" +
		"   '{file}'.\n" +
		"which imports module `{last_module}`.\n" +
		"During this process, the code in another file,\n" +
		"   '{last_file}'\n" +
		"was executed. However in this last file, an attempt was made\n" +
		"to import the original module `{last_module}`\n" +
		"a second time, before Python had completed the first import.\n",
	"import.one-candidate": "Perhaps you meant to import `{correct}` (from `{module}`) " +
		"instead of `{typo}`\n",
	"import.one-candidate-suggest": "Did you mean `{name}`?\n",
	"import.many-candidates": "Instead of trying to import `{typo}` from `{module}`, \n" +
		"perhaps you meant to import one of \n" +
		"the following names which are found in module `{module}`:\n" +
		"`{candidates}`\n",
	"import.many-candidates-suggest": "Did you mean one of the following: `{names}`?\n",

	// Name faults.
	"name.similar-single":  "The similar name `{name}` was found in the {scope} scope.\n",
	"name.similar-many":    "Instead of writing `{name}`, perhaps you meant one of the following:\n",
	"name.similar-suggest": "Did you mean `{name}`?\n",
	"name.scope-list":      "*   {scope} scope: {names}\n",
	"name.not-defined": "In your program, `{name}` is an unknown name.\n" +
		"It is not defined in any scope visible from where it was used.\n",

	// Local variable used before assignment.
	"unbound.both-scopes": "The name `{name}` exists in both the global and nonlocal scope.\n" +
		"This can be rather confusing and is not recommended.\n" +
		"Depending on which variable you wanted to refer to, you needed to add either\n\n" +
		"    global {name}\n\n" +
		"or\n\n" +
		"    nonlocal {name}\n\n" +
		"as the first line inside your function.\n",
	"unbound.both-scopes-suggest": "Did you forget to add either `global {name}` or \n" +
		"`nonlocal {name}`?\n",
	"unbound.one-scope": "The name `{name}` exists in the {scope} scope.\n" +
		"Perhaps the statement\n\n" +
		"    {scope} {name}\n\n" +
		"should have been included as the first line inside your function.\n",
	"unbound.one-scope-suggest": "Did you forget to add `{scope} {name}`?\n",
	"unbound.type-hint": "A type hint found for `{name}` in the {scope} scope.\n" +
		"Perhaps you had used a colon instead of an equal sign and written\n\n" +
		"    {name} : {hint}\n\n" +
		"instead of\n\n" +
		"    {name} = {hint}\n",
	"unbound.type-hint-suggest": "Did you use a colon instead of an equal sign?\n",

	// Type and attribute faults.
	"type.unsupported-operand": "You tried to use the operator {operator}\n" +
		"combining a value of type `{left}` with a value of type `{right}`.\n" +
		"These two types are incompatible for this operation.\n",
	"attribute.not-found": "In your program, the attribute that cannot be found is `{attribute}`.\n" +
		"The object it was looked up on is of type `{type}`.\n",
}
